package payoff

import (
	"errors"
	"fmt"

	"github.com/greensphere/payoff/pkg/models/domain"
)

var (
	ErrUnknownSource = errors.New("unknown energy source")
	ErrNegativeCount = errors.New("unit count must not be negative")
)

// UnknownSourceError reports a lookup miss in the profile catalog.
type UnknownSourceError struct {
	ID domain.SourceID
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown energy source %q", string(e.ID))
}

func (e *UnknownSourceError) Is(target error) bool {
	return target == ErrUnknownSource
}
