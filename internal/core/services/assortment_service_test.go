// internal/core/services/assortment_service_test.go
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
	"github.com/lilithmonodia/winestock-be/internal/core/services"
	"github.com/lilithmonodia/winestock-be/test/helpers"
	"github.com/lilithmonodia/winestock-be/test/mocks"
)

func setupAssortmentService(t *testing.T) (*services.AssortmentService, *mocks.MockAssortmentRepository, *mocks.MockWineRepository, *mocks.MockCacheRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	assortments := mocks.NewMockAssortmentRepository(ctrl)
	wines := mocks.NewMockWineRepository(ctrl)
	cache := mocks.NewMockCacheRepository(ctrl)
	svc := services.NewAssortmentService(assortments, wines, cache, helpers.TestLogger())

	return svc, assortments, wines, cache
}

func TestAssortmentService_CreateAssortment(t *testing.T) {
	ctx := context.Background()

	t.Run("groups_wines_of_same_year", func(t *testing.T) {
		svc, assortments, wines, cache := setupAssortmentService(t)

		members := helpers.CreateTestWines(t, 2)
		members[0].SetID(1)
		members[1].SetID(2)
		wines.EXPECT().FindByID(ctx, int64(1)).Return(members[0], nil)
		wines.EXPECT().FindByID(ctx, int64(2)).Return(members[1], nil)
		assortments.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *domain.Assortment) (int64, error) {
				a.SetID(10)
				return 10, nil
			})
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		assortment, err := svc.CreateAssortment(ctx, []int64{1, 2})

		require.NoError(t, err)
		assert.Equal(t, int64(10), assortment.ID())
		assert.Equal(t, 2, assortment.Size())
		year, ok := assortment.Year()
		require.True(t, ok)
		assert.Equal(t, 2018, year)
		assert.True(t, members[0].InAssortment())
		assert.True(t, members[1].InAssortment())
	})

	t.Run("empty_wine_list_is_rejected", func(t *testing.T) {
		svc, _, _, _ := setupAssortmentService(t)

		_, err := svc.CreateAssortment(ctx, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one wine")
	})

	t.Run("missing_wine_aborts_before_insert", func(t *testing.T) {
		svc, _, wines, _ := setupAssortmentService(t)

		wines.EXPECT().FindByID(ctx, int64(99)).Return(nil, nil)

		_, err := svc.CreateAssortment(ctx, []int64{99})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "wine not found")
	})

	t.Run("year_mismatch_aborts_before_insert", func(t *testing.T) {
		svc, _, wines, _ := setupAssortmentService(t)

		a, err := domain.NewWine("Vintage A", 2015, 75, "ROUGE", decimal.NewFromInt(30))
		require.NoError(t, err)
		a.SetID(1)
		b, err := domain.NewWine("Vintage B", 2016, 75, "BLANC", decimal.NewFromInt(40))
		require.NoError(t, err)
		b.SetID(2)

		wines.EXPECT().FindByID(ctx, int64(1)).Return(a, nil)
		wines.EXPECT().FindByID(ctx, int64(2)).Return(b, nil)

		_, err = svc.CreateAssortment(ctx, []int64{1, 2})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrYearMismatch)
	})

	t.Run("wine_already_in_assortment_is_rejected", func(t *testing.T) {
		svc, _, wines, _ := setupAssortmentService(t)

		member := helpers.CreateTestWine(t)
		member.SetID(1)
		member.RestoreMembership(true)

		wines.EXPECT().FindByID(ctx, int64(1)).Return(member, nil)

		_, err := svc.CreateAssortment(ctx, []int64{1})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyInAssortment)
	})

	t.Run("insert_failure_propagates", func(t *testing.T) {
		svc, assortments, wines, _ := setupAssortmentService(t)

		member := helpers.CreateTestWine(t)
		member.SetID(1)
		wines.EXPECT().FindByID(ctx, int64(1)).Return(member, nil)
		assortments.EXPECT().Insert(ctx, gomock.Any()).Return(int64(0), errors.New("tx aborted"))

		_, err := svc.CreateAssortment(ctx, []int64{1})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create assortment")
	})
}

func TestAssortmentService_GetAssortment(t *testing.T) {
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		svc, assortments, _, _ := setupAssortmentService(t)

		assortments.EXPECT().FindByID(ctx, int64(99)).Return(nil, nil)

		_, err := svc.GetAssortment(ctx, 99)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "assortment not found")
	})
}

func TestAssortmentService_ListAssortments(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_miss_falls_back_to_repository", func(t *testing.T) {
		svc, assortments, _, cache := setupAssortmentService(t)

		stored := domain.NewAssortment()
		stored.SetID(1)
		cache.EXPECT().Get(ctx, "assortments:all", gomock.Any()).Return(errors.New("cache miss"))
		assortments.EXPECT().FindAll(ctx).Return([]*domain.Assortment{stored}, nil)
		cache.EXPECT().Set(ctx, "assortments:all", gomock.Any()).Return(nil)

		result, err := svc.ListAssortments(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 1)
	})
}

func TestAssortmentService_DeleteAssortment(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes_and_invalidates_cache", func(t *testing.T) {
		svc, assortments, _, cache := setupAssortmentService(t)

		assortments.EXPECT().Delete(ctx, int64(5)).Return(true, nil)
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		deleted, err := svc.DeleteAssortment(ctx, 5)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("repository_failure_is_absorbed", func(t *testing.T) {
		svc, assortments, _, _ := setupAssortmentService(t)

		assortments.EXPECT().Delete(ctx, int64(5)).Return(false, errors.New("tx aborted"))

		deleted, err := svc.DeleteAssortment(ctx, 5)

		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestAssortmentService_RemoveWineFromAssortment(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_member", func(t *testing.T) {
		svc, assortments, _, cache := setupAssortmentService(t)

		assortments.EXPECT().RemoveWine(ctx, int64(3)).Return(true, nil)
		cache.EXPECT().Delete(ctx, gomock.Any(), gomock.Any()).Return(nil)

		removed, err := svc.RemoveWineFromAssortment(ctx, 3)

		require.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("non_member_reports_false", func(t *testing.T) {
		svc, assortments, _, _ := setupAssortmentService(t)

		assortments.EXPECT().RemoveWine(ctx, int64(3)).Return(false, nil)

		removed, err := svc.RemoveWineFromAssortment(ctx, 3)

		require.NoError(t, err)
		assert.False(t, removed)
	})
}
