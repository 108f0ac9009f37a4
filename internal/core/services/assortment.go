// internal/core/services/assortment.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

// AssortmentService handles business logic for assortments. The aggregate
// enforces the membership and vintage-year invariants; this layer loads the
// members, lets the aggregate decide and persists the outcome as one unit of
// work.
type AssortmentService struct {
	assortments ports.AssortmentRepository
	wines       ports.WineRepository
	cache       ports.CacheRepository
	logger      *slog.Logger
}

var _ ports.AssortmentService = (*AssortmentService)(nil)

// NewAssortmentService creates a new assortment service
func NewAssortmentService(assortments ports.AssortmentRepository, wines ports.WineRepository, cache ports.CacheRepository, logger *slog.Logger) *AssortmentService {
	return &AssortmentService{
		assortments: assortments,
		wines:       wines,
		cache:       cache,
		logger:      logger.With(slog.String("service", "assortment")),
	}
}

// CreateAssortment builds the aggregate from the referenced wines and
// persists it. Any wine the aggregate rejects aborts the whole operation
// before a single row is written.
func (s *AssortmentService) CreateAssortment(ctx context.Context, wineIDs []int64) (*domain.Assortment, error) {
	if len(wineIDs) == 0 {
		return nil, fmt.Errorf("at least one wine is required")
	}

	assortment := domain.NewAssortment()
	for _, id := range wineIDs {
		wine, err := s.wines.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load wine %d: %w", id, err)
		}
		if wine == nil {
			return nil, fmt.Errorf("wine not found: %d", id)
		}
		if err := assortment.Add(wine); err != nil {
			return nil, fmt.Errorf("cannot add wine %d: %w", id, err)
		}
	}

	if _, err := s.assortments.Insert(ctx, assortment); err != nil {
		return nil, fmt.Errorf("failed to create assortment: %w", err)
	}

	s.invalidateCache(ctx)

	year, _ := assortment.Year()
	s.logger.InfoContext(ctx, "assortment created",
		slog.Int64("ano", assortment.ID()),
		slog.Int("year", year),
		slog.Int("wines", assortment.Size()))

	return assortment, nil
}

// GetAssortment retrieves one assortment by identifier.
func (s *AssortmentService) GetAssortment(ctx context.Context, id int64) (*domain.Assortment, error) {
	assortment, err := s.assortments.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get assortment: %w", err)
	}
	if assortment == nil {
		return nil, fmt.Errorf("assortment not found: %d", id)
	}
	return assortment, nil
}

// ListAssortments returns every assortment, served from cache when warm.
func (s *AssortmentService) ListAssortments(ctx context.Context) ([]*domain.Assortment, error) {
	var cached []*domain.Assortment
	if err := s.cache.Get(ctx, cacheKeyAllAssortments, &cached); err == nil && cached != nil {
		s.logger.DebugContext(ctx, "assortments served from cache",
			slog.Int("count", len(cached)))
		return cached, nil
	}

	assortments, err := s.assortments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assortments: %w", err)
	}

	if err := s.cache.Set(ctx, cacheKeyAllAssortments, assortments); err != nil {
		s.logger.WarnContext(ctx, "failed to cache assortments",
			slog.String("error", err.Error()))
	}

	return assortments, nil
}

// DeleteAssortment releases every member and removes the assortment. Success
// is reported as a boolean; persistence failures are logged and absorbed.
func (s *AssortmentService) DeleteAssortment(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.assortments.Delete(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete assortment",
			slog.Int64("ano", id),
			slog.String("error", err.Error()))
		return false, nil
	}

	if deleted {
		s.invalidateCache(ctx)
	}

	return deleted, nil
}

// RemoveWineFromAssortment unlinks a single wine from whatever assortment
// holds it. It reports whether the wine was a member at all.
func (s *AssortmentService) RemoveWineFromAssortment(ctx context.Context, wineID int64) (bool, error) {
	removed, err := s.assortments.RemoveWine(ctx, wineID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to remove wine from assortment",
			slog.Int64("wno", wineID),
			slog.String("error", err.Error()))
		return false, nil
	}

	if removed {
		s.invalidateCache(ctx)
	}

	return removed, nil
}

func (s *AssortmentService) invalidateCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKeyUnassignedWines, cacheKeyAllAssortments); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate cache",
			slog.String("error", err.Error()))
	}
}
