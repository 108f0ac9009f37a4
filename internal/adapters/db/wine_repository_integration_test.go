//go:build integration
// +build integration

// internal/adapters/db/wine_repository_integration_test.go
package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilithmonodia/winestock-be/internal/adapters/db"
	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
	"github.com/lilithmonodia/winestock-be/test/helpers"
)

func setupWineRepo(t *testing.T) (*db.WineRepository, *helpers.TestDB) {
	t.Helper()

	testDB := helpers.SetupTestDB(t)
	repo := db.NewWineRepository(testDB.Database, helpers.TestLogger())

	return repo, testDB
}

func TestWineRepository_Insert(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	t.Run("assigns_generated_id", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wine := helpers.CreateTestWine(t)
		id, err := repo.Insert(ctx, wine)

		require.NoError(t, err)
		assert.Positive(t, id)
		assert.Equal(t, id, wine.ID())
	})

	t.Run("round_trips_every_column", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wine := helpers.CreateTestWine(t, func(w *domain.Wine) {
			w.SetComment("from the back of the cellar")
		})
		id, err := repo.Insert(ctx, wine)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		helpers.CompareWines(t, wine, found)
		assert.Equal(t, "from the back of the cellar", found.Comment())
		assert.False(t, found.InAssortment())
	})
}

func TestWineRepository_Update(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	t.Run("rewrites_columns", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wine := helpers.CreateTestWine(t)
		id, err := repo.Insert(ctx, wine)
		require.NoError(t, err)

		wine.SetName("Renamed")
		require.NoError(t, wine.SetPrice(decimal.NewFromInt(99)))

		_, err = repo.Update(ctx, wine)
		require.NoError(t, err)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name())
		assert.True(t, decimal.NewFromInt(99).Equal(found.Price()))
	})

	t.Run("absent_row_fails", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wine := helpers.CreateTestWine(t)
		wine.SetID(999999)

		_, err := repo.Update(ctx, wine)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestWineRepository_Delete(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	t.Run("removes_row", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wine := helpers.CreateTestWine(t)
		id, err := repo.Insert(ctx, wine)
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, deleted)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("absent_row_reports_false", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		deleted, err := repo.Delete(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestWineRepository_FindByID(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	t.Run("absent_row_returns_nil", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		found, err := repo.FindByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestWineRepository_ListUnassigned(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	t.Run("excludes_members", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		ids := helpers.SeedTestWines(t, testDB.PgxPool, helpers.CreateTestWines(t, 4))

		// Link two of them to an assortment directly.
		var ano int64
		err := testDB.PgxPool.QueryRow(ctx,
			`INSERT INTO assortment (year) VALUES (2018) RETURNING ano`).Scan(&ano)
		require.NoError(t, err)
		_, err = testDB.PgxPool.Exec(ctx,
			`UPDATE wine SET ano = $1 WHERE wno = ANY($2)`, ano, ids[:2])
		require.NoError(t, err)

		wines, err := repo.ListUnassigned(ctx)
		require.NoError(t, err)
		require.Len(t, wines, 2)
		for _, w := range wines {
			assert.False(t, w.InAssortment())
		}
	})
}

func TestWineRepository_List(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	seed := func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)
		helpers.SeedTestWines(t, testDB.PgxPool, helpers.CreateTestWines(t, 8))
	}

	t.Run("search_filters_by_name", func(t *testing.T) {
		seed(t)

		wines, total, err := repo.List(ctx, ports.WineListParams{Search: "wine 3"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, wines, 1)
	})

	t.Run("color_filter", func(t *testing.T) {
		seed(t)

		wines, total, err := repo.List(ctx, ports.WineListParams{Color: "ROUGE"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, w := range wines {
			assert.Equal(t, domain.ColorRouge, w.Color())
		}
	})

	t.Run("pagination", func(t *testing.T) {
		seed(t)

		wines, total, err := repo.List(ctx, ports.WineListParams{Limit: 3, Offset: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 8, total)
		assert.Len(t, wines, 3)
	})

	t.Run("sorting_by_price_desc", func(t *testing.T) {
		seed(t)

		wines, _, err := repo.List(ctx, ports.WineListParams{SortBy: "price", SortOrder: "desc"})
		require.NoError(t, err)
		require.NotEmpty(t, wines)
		for i := 1; i < len(wines); i++ {
			assert.True(t, wines[i-1].Price().GreaterThanOrEqual(wines[i].Price()),
				fmt.Sprintf("wines not sorted at index %d", i))
		}
	})

	t.Run("empty_result", func(t *testing.T) {
		helpers.TruncateAllTables(t, testDB.PgxPool)

		wines, total, err := repo.List(ctx, ports.WineListParams{})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, wines)
	})
}

func TestWineRepository_Count(t *testing.T) {
	repo, testDB := setupWineRepo(t)
	ctx := context.Background()

	helpers.TruncateAllTables(t, testDB.PgxPool)
	helpers.SeedTestWines(t, testDB.PgxPool, helpers.CreateTestWines(t, 5))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, count)
}
