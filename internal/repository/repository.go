// Package repository declares the storage contract for property records.
//
// The interface lives here (not in the sqlite package) so the service layer
// can depend on the contract without importing any concrete backend. Swapping
// SQLite for Postgres or a document store changes one line in the server
// wiring, nothing in the service.
//
// Validation is deliberately NOT the store's job — the service enforces all
// field rules before anything reaches this interface. The store's own
// guarantees are identifier uniqueness and per-operation atomicity.
package repository

import (
	"context"

	"github.com/sakif/property-board/internal/model"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	GetByID(ctx context.Context, id string) (*model.Property, error)
	List(ctx context.Context) ([]model.Property, error)
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id string) error
}
