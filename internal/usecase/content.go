// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"mylot/internal/domain/entity"
	"mylot/internal/domain/repository"

	"github.com/google/uuid"
)

// Default page window applied when list queries omit or send invalid values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery carries the requested page window for content listings.
type ListQuery struct {
	Page  int
	Limit int
}

// Normalize clamps the query to valid values, applying the defaults.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}

	return q
}

// Pagination converts the normalized query into the repository page window.
func (q ListQuery) Pagination() repository.Pagination {
	return repository.Pagination{Page: q.Page, Limit: q.Limit}
}

// Actor identifies who is performing a content operation.
// Ownership checks compare Actor.ID; role checks use Actor.Role.
type Actor struct {
	ID   uuid.UUID
	Role entity.Role
}

// CanManage reports whether the actor may mutate a document owned by ownerID.
func (a Actor) CanManage(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.Role.Can(entity.PermManageContent)
}

// BatchItemResult reports the outcome of one document in a batch create.
// Batch items are independent: a failed item never rolls back its siblings.
type BatchItemResult struct {
	Index int
	ID    uuid.UUID
	Err   error
}
