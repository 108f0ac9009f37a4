// internal/core/domain/bottle.go
package domain

import "strings"

// BottleSize represents a named bottle-size category.
type BottleSize string

// Bottle size categories, from smallest to largest.
const (
	SizePiccola        BottleSize = "PICCOLA"
	SizeChopine        BottleSize = "CHOPINE"
	SizeFillette       BottleSize = "FILLETTE"
	SizeMedium         BottleSize = "MEDIUM"
	SizeBouteille      BottleSize = "BOUTEILLE"
	SizeMagnum         BottleSize = "MAGNUM"
	SizeJerobam        BottleSize = "JEROBAM"
	SizeRehoboam       BottleSize = "REHOBOAM"
	SizeMathusalem     BottleSize = "MATHUSALEM"
	SizeSalmanazar     BottleSize = "SALMANAZAR"
	SizeBalthazar      BottleSize = "BALTHAZAR"
	SizeNabuchodonosor BottleSize = "NABUCHODONOSOR"
	SizeMelchior       BottleSize = "MELCHIOR"
	SizeSouverain      BottleSize = "SOUVERAIN"
	SizePrimat         BottleSize = "PRIMAT"
	SizeMidas          BottleSize = "MIDAS"
)

// bottleSizes lists every category in ascending volume order. The catalog is
// static reference data and is never mutated at runtime.
var bottleSizes = []BottleSize{
	SizePiccola, SizeChopine, SizeFillette, SizeMedium,
	SizeBouteille, SizeMagnum, SizeJerobam, SizeRehoboam,
	SizeMathusalem, SizeSalmanazar, SizeBalthazar, SizeNabuchodonosor,
	SizeMelchior, SizeSouverain, SizePrimat, SizeMidas,
}

// bottleVolumes maps each category to its volume in centiliters.
var bottleVolumes = map[BottleSize]float64{
	SizePiccola:        20,
	SizeChopine:        25,
	SizeFillette:       37.5,
	SizeMedium:         50,
	SizeBouteille:      75,
	SizeMagnum:         150,
	SizeJerobam:        300,
	SizeRehoboam:       450,
	SizeMathusalem:     600,
	SizeSalmanazar:     900,
	SizeBalthazar:      1200,
	SizeNabuchodonosor: 1500,
	SizeMelchior:       1800,
	SizeSouverain:      2625,
	SizePrimat:         2700,
	SizeMidas:          3000,
}

// Volume returns the volume of the category in centiliters.
func (s BottleSize) Volume() float64 {
	return bottleVolumes[s]
}

// BottleSizes returns every known size category in ascending volume order.
func BottleSizes() []BottleSize {
	out := make([]BottleSize, len(bottleSizes))
	copy(out, bottleSizes)
	return out
}

// BottleSizeFromVolume returns the size category whose volume exactly matches
// v, or false when no category matches.
func BottleSizeFromVolume(v float64) (BottleSize, bool) {
	for _, s := range bottleSizes {
		if bottleVolumes[s] == v {
			return s, true
		}
	}
	return "", false
}

// ParseBottleSize resolves a category by name, case-insensitively.
func ParseBottleSize(name string) (BottleSize, bool) {
	s := BottleSize(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := bottleVolumes[s]; ok {
		return s, true
	}
	return "", false
}

// Color represents a wine colour category.
type Color string

// Colour categories.
const (
	ColorRouge     Color = "ROUGE"
	ColorBlanc     Color = "BLANC"
	ColorRose      Color = "ROSE"
	ColorChampagne Color = "CHAMPAGNE"
)

var colors = map[Color]struct{}{
	ColorRouge:     {},
	ColorBlanc:     {},
	ColorRose:      {},
	ColorChampagne: {},
}

// ParseColor resolves a colour by name, case-insensitively.
func ParseColor(name string) (Color, bool) {
	c := Color(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := colors[c]; ok {
		return c, true
	}
	return "", false
}
