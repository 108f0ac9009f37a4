// internal/core/services/wine_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
	"github.com/lilithmonodia/winestock-be/internal/core/services"
	"github.com/lilithmonodia/winestock-be/test/helpers"
	"github.com/lilithmonodia/winestock-be/test/mocks"
)

func setupWineService(t *testing.T) (*services.WineService, *mocks.MockWineRepository, *mocks.MockCacheRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockWineRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := services.NewWineService(repo, cache, helpers.TestLogger())

	return svc, repo, cache
}

func TestWineService_CreateWine(t *testing.T) {
	ctx := context.Background()

	t.Run("creates_valid_wine", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, wine *domain.Wine) (int64, error) {
				wine.SetID(42)
				return 42, nil
			})
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		wine, err := svc.CreateWine(ctx, ports.CreateWineParams{
			Name:    "Romanée-Conti",
			Year:    1999,
			Volume:  75,
			Color:   "ROUGE",
			Price:   decimal.NewFromInt(2000),
			Comment: "grand cru",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(42), wine.ID())
		assert.Equal(t, "Romanée-Conti", wine.Name())
		assert.Equal(t, "grand cru", wine.Comment())
	})

	t.Run("rejects_future_year_before_insert", func(t *testing.T) {
		svc, _, _ := setupWineService(t)

		_, err := svc.CreateWine(ctx, ports.CreateWineParams{
			Name:   "Futur",
			Year:   3000,
			Volume: 75,
			Color:  "ROUGE",
			Price:  decimal.NewFromInt(10),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidYear)
	})

	t.Run("rejects_unknown_volume", func(t *testing.T) {
		svc, _, _ := setupWineService(t)

		_, err := svc.CreateWine(ctx, ports.CreateWineParams{
			Name:   "Odd Bottle",
			Year:   2019,
			Volume: 80,
			Color:  "BLANC",
			Price:  decimal.NewFromInt(10),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidVolume)
	})

	t.Run("propagates_repository_error", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		repo.EXPECT().
			Insert(ctx, gomock.Any()).
			Return(int64(0), errors.New("connection refused"))

		_, err := svc.CreateWine(ctx, ports.CreateWineParams{
			Name:   "Chablis",
			Year:   2019,
			Volume: 75,
			Color:  "BLANC",
			Price:  decimal.NewFromInt(30),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create wine")
	})
}

func TestWineService_GetWine(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_existing_wine", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		expected := helpers.CreateTestWine(t)
		expected.SetID(7)
		repo.EXPECT().FindByID(ctx, int64(7)).Return(expected, nil)

		wine, err := svc.GetWine(ctx, 7)

		require.NoError(t, err)
		assert.True(t, expected.Equal(wine))
	})

	t.Run("not_found", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		repo.EXPECT().FindByID(ctx, int64(99)).Return(nil, nil)

		_, err := svc.GetWine(ctx, 99)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "wine not found")
	})
}

func TestWineService_UpdateWine(t *testing.T) {
	ctx := context.Background()

	t.Run("applies_fields_through_setters", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		existing := helpers.CreateTestWine(t)
		existing.SetID(3)
		repo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(int64(3), nil)
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		wine, err := svc.UpdateWine(ctx, 3, ports.CreateWineParams{
			Name:    "Renamed",
			Year:    2010,
			Volume:  150,
			Color:   "BLANC",
			Price:   decimal.NewFromInt(60),
			Comment: "updated",
		})

		require.NoError(t, err)
		assert.Equal(t, "Renamed", wine.Name())
		assert.Equal(t, 2010, wine.Year())
		assert.Equal(t, domain.SizeMagnum, wine.Volume())
		assert.Equal(t, domain.ColorBlanc, wine.Color())
	})

	t.Run("unknown_volume_falls_back_to_standard_bottle", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		existing := helpers.CreateTestWine(t)
		existing.SetID(3)
		repo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(int64(3), nil)
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		wine, err := svc.UpdateWine(ctx, 3, ports.CreateWineParams{
			Name:   "Chateau Margaux",
			Year:   2015,
			Volume: 42,
			Color:  "ROUGE",
			Price:  decimal.NewFromInt(450),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.SizeBouteille, wine.Volume())
	})

	t.Run("rejects_future_year", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		existing := helpers.CreateTestWine(t)
		existing.SetID(3)
		repo.EXPECT().FindByID(ctx, int64(3)).Return(existing, nil)

		_, err := svc.UpdateWine(ctx, 3, ports.CreateWineParams{
			Name:   "Chateau Margaux",
			Year:   3000,
			Volume: 75,
			Color:  "ROUGE",
			Price:  decimal.NewFromInt(450),
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidYear)
	})
}

func TestWineService_DeleteWine(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_and_invalidates_cache", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		repo.EXPECT().Delete(ctx, int64(5)).Return(true, nil)
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		deleted, err := svc.DeleteWine(ctx, 5)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("absent_wine_reports_false", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		repo.EXPECT().Delete(ctx, int64(99)).Return(false, nil)

		deleted, err := svc.DeleteWine(ctx, 99)

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("repository_failure_is_absorbed", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		repo.EXPECT().Delete(ctx, int64(5)).Return(false, errors.New("connection lost"))

		deleted, err := svc.DeleteWine(ctx, 5)

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestWineService_ListUnassigned(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_miss_falls_back_to_repository", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		wines := helpers.CreateTestWines(t, 3)
		cache.EXPECT().Get(ctx, "wines:unassigned", gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().ListUnassigned(ctx).Return(wines, nil)
		cache.EXPECT().Set(ctx, "wines:unassigned", wines).Return(nil)

		result, err := svc.ListUnassigned(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		svc, _, cache := setupWineService(t)

		wines := helpers.CreateTestWines(t, 2)
		cache.EXPECT().
			Get(ctx, "wines:unassigned", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest interface{}) error {
				*dest.(*[]*domain.Wine) = wines
				return nil
			})

		result, err := svc.ListUnassigned(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("read_error_propagates", func(t *testing.T) {
		svc, repo, cache := setupWineService(t)

		cache.EXPECT().Get(ctx, "wines:unassigned", gomock.Any()).Return(errors.New("cache miss"))
		repo.EXPECT().ListUnassigned(ctx).Return(nil, errors.New("query failed"))

		_, err := svc.ListUnassigned(ctx)

		require.Error(t, err)
	})
}

func TestWineService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("computes_pagination", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		wines := helpers.CreateTestWines(t, 10)
		repo.EXPECT().
			List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, params ports.WineListParams) ([]*domain.Wine, int64, error) {
				assert.Equal(t, 10, params.Limit)
				assert.Equal(t, 10, params.Offset)
				return wines, 25, nil
			})

		result, err := svc.List(ctx, ports.ListParams{Page: 2, PageSize: 10})

		require.NoError(t, err)
		assert.Equal(t, 2, result.Page)
		assert.Equal(t, int64(25), result.TotalCount)
		assert.Equal(t, 3, result.TotalPages)
	})

	t.Run("defaults_page_and_size", func(t *testing.T) {
		svc, repo, _ := setupWineService(t)

		repo.EXPECT().
			List(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, params ports.WineListParams) ([]*domain.Wine, int64, error) {
				assert.Equal(t, 50, params.Limit)
				assert.Equal(t, 0, params.Offset)
				return nil, 0, nil
			})

		result, err := svc.List(ctx, ports.ListParams{})

		require.NoError(t, err)
		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 50, result.PageSize)
		assert.Equal(t, 0, result.TotalPages)
	})
}
