package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

func TestNewWine_Validation(t *testing.T) {
	currentYear := time.Now().Year()

	tests := []struct {
		name      string
		wineName  string
		year      int
		volume    float64
		color     string
		price     decimal.Decimal
		wantError error
	}{
		{
			name:     "valid_wine",
			wineName: "Romanée-Conti",
			year:     1999,
			volume:   75,
			color:    "ROUGE",
			price:    decimal.NewFromInt(2000),
		},
		{
			name:      "year_in_the_future",
			wineName:  "Futuristic",
			year:      currentYear + 1,
			volume:    75,
			color:     "ROUGE",
			price:     decimal.NewFromInt(10),
			wantError: domain.ErrInvalidYear,
		},
		{
			name:      "unknown_volume",
			wineName:  "Oddball",
			year:      2020,
			volume:    39,
			color:     "BLANC",
			price:     decimal.NewFromInt(10),
			wantError: domain.ErrInvalidVolume,
		},
		{
			name:      "unknown_color",
			wineName:  "Vert",
			year:      2020,
			volume:    75,
			color:     "VERT",
			price:     decimal.NewFromInt(10),
			wantError: domain.ErrInvalidColor,
		},
		{
			name:      "year_checked_before_volume",
			wineName:  "DoubleBad",
			year:      currentYear + 5,
			volume:    39,
			color:     "VERT",
			price:     decimal.NewFromInt(10),
			wantError: domain.ErrInvalidYear,
		},
		{
			name:      "empty_name",
			wineName:  "",
			year:      2020,
			volume:    75,
			color:     "ROSE",
			price:     decimal.NewFromInt(10),
			wantError: domain.ErrEmptyName,
		},
		{
			name:      "negative_price",
			wineName:  "Cheap",
			year:      2020,
			volume:    75,
			color:     "ROUGE",
			price:     decimal.NewFromInt(-1),
			wantError: domain.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.NewWine(tt.wineName, tt.year, tt.volume, tt.color, tt.price)

			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Nil(t, w)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.UnpersistedID, w.ID())
			assert.Equal(t, tt.wineName, w.Name())
			assert.Equal(t, tt.year, w.Year())
			assert.False(t, w.InAssortment())
		})
	}
}

func TestWine_SetYear_Revalidates(t *testing.T) {
	w, err := domain.NewWine("Margaux", 2015, 75, "rouge", decimal.NewFromInt(300))
	require.NoError(t, err)

	err = w.SetYear(time.Now().Year() + 1)
	require.ErrorIs(t, err, domain.ErrInvalidYear)
	assert.Equal(t, 2015, w.Year(), "failed SetYear must not change state")

	require.NoError(t, w.SetYear(2010))
	assert.Equal(t, 2010, w.Year())
}

func TestWine_SetVolume_FallsBackToStandardBottle(t *testing.T) {
	w, err := domain.NewWine("Margaux", 2015, 150, "ROUGE", decimal.NewFromInt(300))
	require.NoError(t, err)
	require.Equal(t, domain.SizeMagnum, w.Volume())

	// Unknown volume does not fail; it falls back to the standard bottle.
	w.SetVolume(39)
	assert.Equal(t, domain.SizeBouteille, w.Volume())

	w.SetVolume(600)
	assert.Equal(t, domain.SizeMathusalem, w.Volume())
}

func TestWine_Equal(t *testing.T) {
	mk := func() *domain.Wine {
		w, err := domain.NewWine("Pétrus", 1990, 75, "ROUGE", decimal.NewFromInt(4500))
		require.NoError(t, err)
		w.SetID(7)
		w.SetComment("cellar A")
		return w
	}

	a, b := mk(), mk()
	assert.True(t, a.Equal(b))

	b.SetComment("cellar B")
	assert.False(t, a.Equal(b))

	b.SetComment("cellar A")
	b.SetID(8)
	assert.False(t, a.Equal(b), "identifier participates in equality")
}

func TestWine_JSONRoundTrip(t *testing.T) {
	w, err := domain.NewWine("Chablis", 2018, 37.5, "BLANC", decimal.NewFromFloat(24.50))
	require.NoError(t, err)
	w.SetID(42)

	data, err := w.MarshalJSON()
	require.NoError(t, err)

	var back domain.Wine
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, w.Equal(&back))
}
