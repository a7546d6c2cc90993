package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is wrapped by every conversion failure.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// MustIntToUint32 is IntToUint32 for call sites where overflow means the
// caller broke a structural limit. It panics instead of returning an error.
func MustIntToUint32(v int) uint32 {
	u, err := IntToUint32(v)
	if err != nil {
		panic(err)
	}
	return u
}
