// internal/core/services/wine.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// Cache keys owned by the services layer.
const (
	cacheKeyUnassignedWines = "wines:unassigned"
	cacheKeyAllAssortments  = "assortments:all"
)

// WineService handles business logic for single wines. Writes surface typed
// repository errors; the outer boolean delete keeps the tolerant behavior
// callers rely on.
type WineService struct {
	repo   ports.WineRepository
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *WineService implements the WineService interface.
var _ ports.WineService = (*WineService)(nil)

// NewWineService creates a new wine service
func NewWineService(repo ports.WineRepository, cache ports.CacheRepository, logger *slog.Logger) *WineService {
	return &WineService{
		repo:   repo,
		cache:  cache,
		logger: logger.With(slog.String("service", "wine")),
	}
}

// CreateWine validates the raw fields through the domain constructor and
// persists the result.
func (s *WineService) CreateWine(ctx context.Context, params ports.CreateWineParams) (*domain.Wine, error) {
	wine, err := domain.NewWine(params.Name, params.Year, params.Volume, params.Color, params.Price)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	wine.SetComment(params.Comment)

	if _, err := s.repo.Insert(ctx, wine); err != nil {
		return nil, fmt.Errorf("failed to create wine: %w", err)
	}

	s.invalidateCache(ctx)

	s.logger.InfoContext(ctx, "wine created",
		slog.Int64("wno", wine.ID()),
		slog.String("name", wine.Name()))

	return wine, nil
}

// GetWine retrieves a wine by identifier.
func (s *WineService) GetWine(ctx context.Context, id int64) (*domain.Wine, error) {
	wine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get wine: %w", err)
	}
	if wine == nil {
		return nil, fmt.Errorf("wine not found: %d", id)
	}
	return wine, nil
}

// UpdateWine applies the given fields to an existing wine through the entity's
// setters, so the tolerant volume fallback and year re-validation apply, then
// rewrites the row.
func (s *WineService) UpdateWine(ctx context.Context, id int64, params ports.CreateWineParams) (*domain.Wine, error) {
	wine, err := s.GetWine(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := wine.SetYear(params.Year); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	color, ok := domain.ParseColor(params.Color)
	if !ok {
		return nil, fmt.Errorf("validation failed: %w: %q", domain.ErrInvalidColor, params.Color)
	}
	if err := wine.SetPrice(params.Price); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if params.Name != "" {
		wine.SetName(params.Name)
	}
	wine.SetVolume(params.Volume)
	wine.SetColor(color)
	wine.SetComment(params.Comment)

	if _, err := s.repo.Update(ctx, wine); err != nil {
		return nil, fmt.Errorf("failed to update wine: %w", err)
	}

	s.invalidateCache(ctx)

	s.logger.InfoContext(ctx, "wine updated", slog.Int64("wno", id))

	return wine, nil
}

// DeleteWine removes a wine and reports success as a boolean. Persistence
// failures are logged and absorbed here at the boundary; the repository
// underneath has already rolled back.
func (s *WineService) DeleteWine(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete wine",
			slog.Int64("wno", id),
			slog.String("error", err.Error()))
		return false, nil
	}

	if deleted {
		s.invalidateCache(ctx)
	}

	return deleted, nil
}

// ListUnassigned returns the wines outside any assortment, served from cache
// when warm. Read errors propagate.
func (s *WineService) ListUnassigned(ctx context.Context) ([]*domain.Wine, error) {
	var cached []*domain.Wine
	if err := s.cache.Get(ctx, cacheKeyUnassignedWines, &cached); err == nil && cached != nil {
		s.logger.DebugContext(ctx, "unassigned wines served from cache",
			slog.Int("count", len(cached)))
		return cached, nil
	}

	wines, err := s.repo.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned wines: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKeyUnassignedWines, wines); err != nil {
		s.logger.WarnContext(ctx, "failed to cache unassigned wines",
			slog.String("error", err.Error()))
	}

	return wines, nil
}

// List retrieves wines with filtering and pagination.
func (s *WineService) List(ctx context.Context, params ports.ListParams) (*ports.ListResult, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 50
	}

	wines, totalCount, err := s.repo.List(ctx, ports.WineListParams{
		Search:     params.Search,
		Year:       params.Year,
		Color:      params.Color,
		Unassigned: params.Unassigned,
		SortBy:     params.SortBy,
		SortOrder:  params.SortOrder,
		Limit:      pageSize,
		Offset:     (page - 1) * pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list wines: %w", err)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return &ports.ListResult{
		Wines:      wines,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

func (s *WineService) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKeyUnassignedWines, cacheKeyAllAssortments); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate cache",
			slog.String("error", err.Error()))
	}
}
