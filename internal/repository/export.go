// Package repository contains data access abstractions; implementations live
// in subpackages.
package repository

import (
	"context"

	"resumebuilder/internal/model"
)

// ExportRepository persists metadata of exported resume PDFs.
// Implementations hold no business logic.
type ExportRepository interface {
	// Create inserts a new export record and returns the stored row.
	Create(ctx context.Context, exp *model.Export) (*model.Export, error)

	// FindByID returns an export by its ID, or sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Export, error)

	// List returns a page of exports, newest first, and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Export], error)

	// Delete removes an export by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
