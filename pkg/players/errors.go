package players

import (
	"fmt"

	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// ErrNoAlliteration is returned when no last name matching the first
// letter of a first name was found within the redraw limit.
var ErrNoAlliteration = fmt.Errorf("no alliterative last name: %w", sampler.ErrExhaustedRetries)
