// internal/core/domain/wine.go
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// UnpersistedID marks an entity that has not been stored yet.
const UnpersistedID int64 = -1

// Wine is a single inventory item: one bottle reference with its descriptive
// fields and a membership flag tracking whether it currently belongs to an
// Assortment. The flag is owned by the Assortment aggregate; nothing else
// mutates it.
type Wine struct {
	id           int64
	name         string
	year         int
	volume       BottleSize
	color        Color
	price        decimal.Decimal
	comment      string
	inAssortment bool
}

// NewWine validates and constructs a detached Wine. The year must not be in
// the future, the volume must match a catalog size exactly and the colour must
// parse; each check runs before any field is assigned and the first failure
// wins.
func NewWine(name string, year int, volume float64, color string, price decimal.Decimal) (*Wine, error) {
	if year > time.Now().Year() {
		return nil, ErrInvalidYear
	}
	size, ok := BottleSizeFromVolume(volume)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrInvalidVolume, volume)
	}
	col, ok := ParseColor(color)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Wine{
		id:     UnpersistedID,
		name:   name,
		year:   year,
		volume: size,
		color:  col,
		price:  price,
	}, nil
}

// ID returns the store-assigned identifier, or UnpersistedID.
func (w *Wine) ID() int64 { return w.id }

// SetID assigns the generated identifier after a successful insert.
func (w *Wine) SetID(id int64) { w.id = id }

func (w *Wine) Name() string            { return w.name }
func (w *Wine) SetName(name string)     { w.name = name }
func (w *Wine) Year() int               { return w.year }
func (w *Wine) Volume() BottleSize      { return w.volume }
func (w *Wine) Color() Color            { return w.color }
func (w *Wine) SetColor(c Color)        { w.color = c }
func (w *Wine) Price() decimal.Decimal  { return w.price }
func (w *Wine) Comment() string         { return w.comment }
func (w *Wine) SetComment(c string)     { w.comment = c }

// InAssortment reports whether the wine currently belongs to an assortment.
func (w *Wine) InAssortment() bool { return w.inAssortment }

// SetYear re-validates against the current year on every call, independent of
// construction-time validation.
func (w *Wine) SetYear(year int) error {
	if year > time.Now().Year() {
		return ErrInvalidYear
	}
	w.year = year
	return nil
}

// SetVolume is tolerant: an unknown volume falls back to the standard bottle
// instead of failing. This deliberately differs from the strict constructor.
func (w *Wine) SetVolume(volume float64) {
	size, ok := BottleSizeFromVolume(volume)
	if !ok {
		size = SizeBouteille
	}
	w.volume = size
}

// SetPrice rejects negative amounts.
func (w *Wine) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	w.price = price
	return nil
}

// Equal reports whether two wines match on every field, including the
// membership flag.
func (w *Wine) Equal(o *Wine) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.id == o.id &&
		w.name == o.name &&
		w.year == o.year &&
		w.volume == o.volume &&
		w.color == o.color &&
		w.price.Equal(o.price) &&
		w.comment == o.comment &&
		w.inAssortment == o.inAssortment
}

// Less orders wines by identifier, the natural order.
func (w *Wine) Less(o *Wine) bool { return w.id < o.id }

func (w *Wine) String() string {
	return fmt.Sprintf("Wine{name=%q, year=%d, volume=%s(%v), color=%s, price=%s, comment=%q}",
		w.name, w.year, w.volume, w.volume.Volume(), w.color, w.price, w.comment)
}

// wineJSON is the serialized shape of a Wine. Fields stay unexported on the
// entity itself so membership and validation cannot be bypassed by callers.
type wineJSON struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Year         int             `json:"year"`
	Volume       BottleSize      `json:"volume"`
	VolumeCl     float64         `json:"volume_cl"`
	Color        Color           `json:"color"`
	Price        decimal.Decimal `json:"price"`
	Comment      string          `json:"comment,omitempty"`
	InAssortment bool            `json:"in_assortment"`
}

// MarshalJSON implements json.Marshaler.
func (w *Wine) MarshalJSON() ([]byte, error) {
	return json.Marshal(wineJSON{
		ID:           w.id,
		Name:         w.name,
		Year:         w.year,
		Volume:       w.volume,
		VolumeCl:     w.volume.Volume(),
		Color:        w.color,
		Price:        w.price,
		Comment:      w.comment,
		InAssortment: w.inAssortment,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The snapshot is trusted as-is;
// it exists for cache round-trips, not as a validation bypass for user input.
func (w *Wine) UnmarshalJSON(data []byte) error {
	var s wineJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	w.id = s.ID
	w.name = s.Name
	w.year = s.Year
	w.volume = s.Volume
	w.color = s.Color
	w.price = s.Price
	w.comment = s.Comment
	w.inAssortment = s.InAssortment
	return nil
}

// setInAssortment flips the membership flag. Only the Assortment aggregate
// calls this.
func (w *Wine) setInAssortment(v bool) { w.inAssortment = v }

// RestoreMembership sets the membership flag while rehydrating a persisted
// wine from storage. It is not part of the aggregate contract: aggregates
// manage the flag exclusively through Add and Remove.
func (w *Wine) RestoreMembership(inAssortment bool) { w.inAssortment = inAssortment }
