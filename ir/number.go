package ir

import (
	"fmt"

	"github.com/cockroachdb/apd"
)

// ParseNumber reads v as a decimal and converts it to the nearest
// float64. Tagline never does arithmetic on numbers; this is only a read
// accessor.
func ParseNumber(v string) (float64, error) {
	d, _, err := apd.NewFromString(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadNumber, v, err)
	}
	f, err := d.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadNumber, v, err)
	}
	return f, nil
}
