package pylon

import (
	"errors"
	"fmt"
)

// Activation rejections.
var (
	ErrNothingNearby = errors.New("no pylon nearby")
	ErrLimitReached  = errors.New("pylon limit reached")
	ErrNoPawn        = errors.New("no pawn position")
)

// CooldownError rejects an activation on an anchor that is not ready yet.
type CooldownError struct {
	Kind      Kind
	Remaining int // whole seconds, rounded down
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s on cooldown (%ds)", e.Kind, e.Remaining)
}
