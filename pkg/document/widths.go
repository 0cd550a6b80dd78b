package document

import (
	"errors"
	"fmt"
)

// WidthMode selects how column widths are interpreted.
type WidthMode int

const (
	// Percent widths are fractions of the usable width and should sum to 1.
	Percent WidthMode = iota
	// Scale widths are base sizes scaled by usable / sum(base).
	Scale
)

var ErrInvalidWidths = errors.New("invalid column widths")

// ResolveWidths converts requested widths to absolute widths that exactly
// fill usable. The last column absorbs rounding so error does not accumulate.
func ResolveWidths(mode WidthMode, widths []float64, usable float64) ([]float64, error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("%w: no columns", ErrInvalidWidths)
	}
	if usable <= 0 {
		return nil, fmt.Errorf("%w: usable width %.2f", ErrInvalidWidths, usable)
	}

	var sum float64
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: column %d has width %v", ErrInvalidWidths, i, w)
		}
		sum += w
	}

	factor := usable
	if mode == Scale {
		factor = usable / sum
	} else if sum > 1.0001 || sum < 0.9999 {
		// proportions that do not add up to 1 are normalized
		factor = usable / sum
	}

	out := make([]float64, len(widths))
	var used float64
	for i := 0; i < len(widths)-1; i++ {
		out[i] = widths[i] * factor
		used += out[i]
	}
	out[len(out)-1] = usable - used

	return out, nil
}
