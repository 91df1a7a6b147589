package battle

import (
	"errors"
	"fmt"
)

// ErrInvalidDamage reports a damage pipeline result that is not a finite
// number. Always recovered to 0 and logged, never propagated: a live
// combat turn degrades, it doesn't crash.
var ErrInvalidDamage = errors.New("damage value is not a finite number")

func errInvalidDamage(value float64) error {
	return fmt.Errorf("%w: %v", ErrInvalidDamage, value)
}
