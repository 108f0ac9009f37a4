// internal/adapters/db/errors.go
package db

import "errors"

// Typed gateway errors. Callers inspect them with errors.Is and decide how
// far to degrade them; the repositories themselves never swallow a failure.
var (
	ErrWineNotFound       = errors.New("wine not found")
	ErrAssortmentNotFound = errors.New("assortment not found")
	ErrAssortmentNoYear   = errors.New("assortment has no vintage year")
)
