// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

// CreateWineParams carries the raw, unvalidated fields for a new wine.
// Validation happens in the domain constructor.
type CreateWineParams struct {
	Name    string          `json:"name"`
	Year    int             `json:"year"`
	Volume  float64         `json:"volume"`
	Color   string          `json:"color"`
	Price   decimal.Decimal `json:"price"`
	Comment string          `json:"comment"`
}

// ListParams holds parameters for listing wines.
type ListParams struct {
	Search     string
	Year       *int
	Color      string
	Unassigned bool
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// ListResult holds the result of listing wines.
type ListResult struct {
	Wines      []*domain.Wine `json:"wines"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int64          `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// WineService is the application service port for single wines.
type WineService interface {
	CreateWine(ctx context.Context, params CreateWineParams) (*domain.Wine, error)
	GetWine(ctx context.Context, id int64) (*domain.Wine, error)
	UpdateWine(ctx context.Context, id int64, params CreateWineParams) (*domain.Wine, error)
	// DeleteWine reports success as a boolean; persistence failures are
	// logged and absorbed, matching the best-effort write policy.
	DeleteWine(ctx context.Context, id int64) (bool, error)
	// ListUnassigned returns the wines outside any assortment. Read errors
	// propagate to the caller.
	ListUnassigned(ctx context.Context) ([]*domain.Wine, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
}

// AssortmentService is the application service port for assortments.
type AssortmentService interface {
	// CreateAssortment builds the aggregate from the given wines, enforcing
	// membership and vintage-year invariants, then persists it as one unit
	// of work.
	CreateAssortment(ctx context.Context, wineIDs []int64) (*domain.Assortment, error)
	GetAssortment(ctx context.Context, id int64) (*domain.Assortment, error)
	ListAssortments(ctx context.Context) ([]*domain.Assortment, error)
	DeleteAssortment(ctx context.Context, id int64) (bool, error)
	RemoveWineFromAssortment(ctx context.Context, wineID int64) (bool, error)
}
