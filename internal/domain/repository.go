// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"

	"stockroom/internal/core/id"
	"stockroom/internal/domain/filter"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	Validate(ctx context.Context) error
}

// --- Filter & Pagination ---

// ListQuery contains the common list-endpoint inputs: free-text search,
// dynamic filter conditions, sorting and 1-based pagination.
type ListQuery struct {
	Search    string
	Filters   []filter.Condition
	SortField string
	SortOrder string // "asc" | "desc"
	Page      int
	Limit     int
}

// DefaultListQuery returns the documented defaults (page 1, limit 10).
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 1, Limit: 10, SortOrder: "asc"}
}

// Offset computes the SQL offset for the 1-based page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Desc reports whether descending order was requested.
func (q ListQuery) Desc() bool {
	return q.SortOrder == "desc"
}

// ListResult contains one page of results plus the total match count.
type ListResult[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// --- Repository Interfaces ---

// CatalogRepository defines CRUD operations for catalog entities.
type CatalogRepository[T Validatable] interface {
	Create(ctx context.Context, entity T) error
	GetByID(ctx context.Context, id id.ID) (T, error)
	Update(ctx context.Context, entity T) error

	// Delete performs physical removal. Foreign-key violations are
	// classified as conflicts by the implementation.
	Delete(ctx context.Context, id id.ID) error

	List(ctx context.Context, q ListQuery) (ListResult[T], error)
	Exists(ctx context.Context, id id.ID) (bool, error)
}

// TxRunner executes a function within a database transaction.
// Implemented by the postgres TxManager.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
