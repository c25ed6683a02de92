package league

import (
	"errors"
	"fmt"
)

// ErrInvalidComposition is matched by every *CompositionError.
var ErrInvalidComposition = errors.New("invalid league composition")

// CompositionError reports league, division or team counts out of range.
type CompositionError struct {
	Leagues          int
	Divisions        int
	TeamsPerDivision int
	Reason           string
}

func (e *CompositionError) Error() string {
	return fmt.Sprintf("invalid composition of %d leagues, %d divisions, %d teams per division: %s",
		e.Leagues, e.Divisions, e.TeamsPerDivision, e.Reason)
}

func (e *CompositionError) Is(target error) bool {
	return target == ErrInvalidComposition
}
