package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
)

func TestBottleSizeFromVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   domain.BottleSize
		found  bool
	}{
		{name: "standard_bottle", volume: 75, want: domain.SizeBouteille, found: true},
		{name: "half_bottle", volume: 37.5, want: domain.SizeFillette, found: true},
		{name: "magnum", volume: 150, want: domain.SizeMagnum, found: true},
		{name: "largest", volume: 3000, want: domain.SizeMidas, found: true},
		{name: "smallest", volume: 20, want: domain.SizePiccola, found: true},
		{name: "no_match", volume: 39, found: false},
		{name: "near_miss", volume: 74.9, found: false},
		{name: "zero", volume: 0, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.BottleSizeFromVolume(tt.volume)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.volume, got.Volume(), "reverse lookup")
			}
		})
	}
}

func TestBottleSizes_CatalogIsComplete(t *testing.T) {
	sizes := domain.BottleSizes()
	require.Len(t, sizes, 16)

	// Volumes strictly ascend through the catalog.
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i].Volume(), sizes[i-1].Volume())
	}
}

func TestParseBottleSize(t *testing.T) {
	s, ok := domain.ParseBottleSize("bouteille")
	require.True(t, ok)
	assert.Equal(t, domain.SizeBouteille, s)

	_, ok = domain.ParseBottleSize("amphora")
	assert.False(t, ok)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		want  domain.Color
		found bool
	}{
		{in: "ROUGE", want: domain.ColorRouge, found: true},
		{in: "rouge", want: domain.ColorRouge, found: true},
		{in: " Blanc ", want: domain.ColorBlanc, found: true},
		{in: "rose", want: domain.ColorRose, found: true},
		{in: "champagne", want: domain.ColorChampagne, found: true},
		{in: "vert", found: false},
		{in: "", found: false},
	}

	for _, tt := range tests {
		got, ok := domain.ParseColor(tt.in)
		assert.Equal(t, tt.found, ok, tt.in)
		if tt.found {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
