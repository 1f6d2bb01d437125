// Package sentinel holds error values for infrastructure facts. Adapters
// return them (usually wrapped) so callers can branch without knowing the
// transport.
package sentinel

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
