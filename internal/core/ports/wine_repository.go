// internal/core/ports/wine_repository.go
package ports

import (
	"context"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

// WineListParams holds the filters for listing wines.
type WineListParams struct {
	Search     string
	Year       *int
	Color      string
	Volume     *float64
	Unassigned bool
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

// WineRepository is the persistence port for single wines. Every mutation
// runs in its own transaction: commit on success, rollback on any failure.
// Write failures come back as errors for the caller to absorb or surface;
// read failures always propagate.
type WineRepository interface {
	// Insert stores a new wine, assigns the generated identifier back onto
	// the entity and returns it.
	Insert(ctx context.Context, wine *domain.Wine) (int64, error)
	// Update rewrites every column of the row keyed by the wine's
	// identifier. It fails with ErrWineNotFound when no row was affected.
	Update(ctx context.Context, wine *domain.Wine) (int64, error)
	// Delete removes the row and reports whether one was affected.
	Delete(ctx context.Context, id int64) (bool, error)
	FindByID(ctx context.Context, id int64) (*domain.Wine, error)
	// ListUnassigned returns every wine that belongs to no assortment.
	ListUnassigned(ctx context.Context) ([]*domain.Wine, error)
	List(ctx context.Context, params WineListParams) ([]*domain.Wine, int64, error)
	Count(ctx context.Context) (int64, error)
}

// AssortmentRepository is the persistence port for assortments. Inserting an
// assortment links every member in the same transaction; a failed link rolls
// back the whole unit of work.
type AssortmentRepository interface {
	Insert(ctx context.Context, assortment *domain.Assortment) (int64, error)
	// FindAll rebuilds each aggregate by re-adding its members through the
	// aggregate's own Add, so invariants are re-derived rather than trusted
	// from storage.
	FindAll(ctx context.Context) ([]*domain.Assortment, error)
	FindByID(ctx context.Context, id int64) (*domain.Assortment, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// RemoveWine unlinks a single wine from whatever assortment holds it.
	RemoveWine(ctx context.Context, wineID int64) (bool, error)
}
