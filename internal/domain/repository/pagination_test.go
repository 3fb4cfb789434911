package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Pagination{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, Pagination{Page: 11, Limit: 5}.Offset())

	// Page numbers below 1 never produce a negative offset.
	assert.Equal(t, 0, Pagination{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, 0, Pagination{Page: -3, Limit: 10}.Offset())
}
