package impl

import (
	"context"
	"sync"

	"mylot/internal/usecase"

	"github.com/google/uuid"
)

// runBatch fans one create call out per input and collects every outcome.
// Items are independent: a failure in one never rolls back the others, and
// the result slice is indexed to match the input order.
func runBatch[T any](ctx context.Context, inputs []T, create func(ctx context.Context, input T) (uuid.UUID, error)) []usecase.BatchItemResult {
	results := make([]usecase.BatchItemResult, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(index int, item T) {
			defer wg.Done()

			id, err := create(ctx, item)
			results[index] = usecase.BatchItemResult{Index: index, ID: id, Err: err}
		}(i, input)
	}
	wg.Wait()

	return results
}
