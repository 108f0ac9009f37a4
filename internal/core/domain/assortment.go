// internal/core/domain/assortment.go
package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Assortment is an ordered collection of wines sharing one vintage year. It
// maintains a running total price and the insertion-ordered member name list
// incrementally, so add and remove stay O(1); the joined name string is
// derived lazily from the list.
//
// The aggregate has no internal locking. It is owned by a single logical
// session at a time and must not be mutated concurrently.
type Assortment struct {
	id         int64
	wines      []*Wine
	year       int
	hasYear    bool
	totalPrice decimal.Decimal
	names      []string
}

// NewAssortment creates an empty, unpersisted assortment. The shared year
// stays unset until the first wine is added.
func NewAssortment() *Assortment {
	return NewAssortmentWithID(UnpersistedID)
}

// NewAssortmentWithID creates an empty assortment carrying a known identifier.
func NewAssortmentWithID(id int64) *Assortment {
	return &Assortment{
		id:         id,
		totalPrice: decimal.Zero,
	}
}

// ID returns the store-assigned identifier, or UnpersistedID.
func (a *Assortment) ID() int64 { return a.id }

// SetID assigns the generated identifier after a successful insert.
func (a *Assortment) SetID(id int64) { a.id = id }

// Year returns the shared vintage year and whether it has been established.
func (a *Assortment) Year() (int, bool) { return a.year, a.hasYear }

// TotalPrice returns the running sum of member prices.
func (a *Assortment) TotalPrice() decimal.Decimal { return a.totalPrice }

// WineNames joins the member names in insertion order with ", ".
func (a *Assortment) WineNames() string { return strings.Join(a.names, ", ") }

// Size returns the number of members.
func (a *Assortment) Size() int { return len(a.wines) }

// IsEmpty reports whether the assortment has no members.
func (a *Assortment) IsEmpty() bool { return len(a.wines) == 0 }

// Wines returns a copy of the member sequence in insertion order.
func (a *Assortment) Wines() []*Wine {
	out := make([]*Wine, len(a.wines))
	copy(out, a.wines)
	return out
}

// Get returns the member at position i.
func (a *Assortment) Get(i int) *Wine { return a.wines[i] }

// Contains reports whether an equal wine is a member.
func (a *Assortment) Contains(w *Wine) bool { return a.indexOf(w) >= 0 }

// IndexOf returns the position of the first equal member, or -1.
func (a *Assortment) IndexOf(w *Wine) int { return a.indexOf(w) }

// Add appends a wine to the assortment. It fails with ErrAlreadyInAssortment
// when the wine belongs to any assortment, and with ErrYearMismatch when the
// assortment already holds a different vintage year. On failure no state
// changes; on success the shared year is established if needed, the wine's
// membership flag flips on and the derived total and name list are updated.
func (a *Assortment) Add(w *Wine) error {
	if w.inAssortment {
		return ErrAlreadyInAssortment
	}
	if a.hasYear && w.year != a.year {
		return fmt.Errorf("%w: assortment year %d, wine year %d", ErrYearMismatch, a.year, w.year)
	}

	a.year = w.year
	a.hasYear = true
	w.setInAssortment(true)
	a.totalPrice = a.totalPrice.Add(w.price)
	a.names = append(a.names, w.name)
	a.wines = append(a.wines, w)
	return nil
}

// Remove takes a member out of the assortment. It fails with
// ErrNotInAssortment when no equal member is present; on success the wine's
// membership flag flips off and the derived total and name list shrink by
// exactly this member's contribution.
func (a *Assortment) Remove(w *Wine) error {
	i := a.indexOf(w)
	if i < 0 {
		return ErrNotInAssortment
	}

	member := a.wines[i]
	member.setInAssortment(false)
	a.totalPrice = a.totalPrice.Sub(member.price)
	a.names = append(a.names[:i], a.names[i+1:]...)
	a.wines = append(a.wines[:i], a.wines[i+1:]...)
	return nil
}

// AddAll adds each wine through Add so every invariant check applies. It
// returns the number of wines added and the joined rejection errors, if any.
func (a *Assortment) AddAll(wines ...*Wine) (int, error) {
	var added int
	var errs []error
	for _, w := range wines {
		if err := a.Add(w); err != nil {
			errs = append(errs, err)
			continue
		}
		added++
	}
	return added, errors.Join(errs...)
}

// RemoveAll removes each wine through Remove. It returns the number removed
// and the joined errors for wines that were not members.
func (a *Assortment) RemoveAll(wines ...*Wine) (int, error) {
	var removed int
	var errs []error
	for _, w := range wines {
		if err := a.Remove(w); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// Filter returns the members for which keep returns true, in order.
func (a *Assortment) Filter(keep func(*Wine) bool) []*Wine {
	var out []*Wine
	for _, w := range a.wines {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// Clear releases every member and resets the assortment to its empty state,
// dropping the identifier, shared year and derived fields.
func (a *Assortment) Clear() {
	for _, w := range a.wines {
		w.setInAssortment(false)
	}
	a.id = UnpersistedID
	a.wines = nil
	a.names = nil
	a.year = 0
	a.hasYear = false
	a.totalPrice = decimal.Zero
}

// Sort orders the members by identifier ascending. Derived totals are
// order-independent; the name list is rebuilt to follow the new order.
func (a *Assortment) Sort() {
	sort.SliceStable(a.wines, func(i, j int) bool {
		return a.wines[i].Less(a.wines[j])
	})
	a.names = a.names[:0]
	for _, w := range a.wines {
		a.names = append(a.names, w.name)
	}
}

// Equal reports whether two assortments match on identifier, member sequence,
// shared year, total price and joined names.
func (a *Assortment) Equal(o *Assortment) bool {
	if a == nil || o == nil {
		return a == o
	}
	if a.id != o.id || a.hasYear != o.hasYear || a.year != o.year ||
		!a.totalPrice.Equal(o.totalPrice) || len(a.wines) != len(o.wines) {
		return false
	}
	for i := range a.wines {
		if !a.wines[i].Equal(o.wines[i]) {
			return false
		}
	}
	return a.WineNames() == o.WineNames()
}

func (a *Assortment) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Assortment{id=%d, wines=[", a.id)
	for i, w := range a.wines {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(w.String())
	}
	fmt.Fprintf(&sb, "], totalPrice=%s}", a.totalPrice)
	return sb.String()
}

type assortmentJSON struct {
	ID         int64           `json:"id"`
	Year       *int            `json:"year"`
	TotalPrice decimal.Decimal `json:"total_price"`
	WineNames  string          `json:"wine_names"`
	Wines      []*Wine         `json:"wines"`
}

// MarshalJSON implements json.Marshaler.
func (a *Assortment) MarshalJSON() ([]byte, error) {
	var year *int
	if a.hasYear {
		y := a.year
		year = &y
	}
	return json.Marshal(assortmentJSON{
		ID:         a.id,
		Year:       year,
		TotalPrice: a.totalPrice,
		WineNames:  a.WineNames(),
		Wines:      a.wines,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The aggregate state is rebuilt
// by re-adding every wine through Add, so the running total, the name list and
// the shared year are re-derived rather than trusted from the snapshot.
func (a *Assortment) UnmarshalJSON(data []byte) error {
	var s assortmentJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*a = *NewAssortment()
	a.id = s.ID
	for _, w := range s.Wines {
		w.RestoreMembership(false)
		if err := a.Add(w); err != nil {
			return fmt.Errorf("invalid assortment snapshot: %w", err)
		}
	}
	return nil
}

func (a *Assortment) indexOf(w *Wine) int {
	for i, m := range a.wines {
		if m == w || m.Equal(w) {
			return i
		}
	}
	return -1
}
