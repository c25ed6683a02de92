package geography

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/leaguegen/pkg/dataset"
	"github.com/dmitrymomot/leaguegen/pkg/sampler"
)

// Mode selects the place list and how it is sampled.
type Mode string

const (
	Cities      Mode = "cities"
	BigCities   Mode = "bigcities"
	SmallTowns  Mode = "smalltowns"
	States      Mode = "states"
	BigStates   Mode = "bigstates"
	SmallStates Mode = "smallstates"
)

// Modes lists every supported mode.
func Modes() []Mode {
	return []Mode{Cities, BigCities, SmallTowns, States, BigStates, SmallStates}
}

// ParseMode converts a string such as "bigcities" into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case Cities, BigCities, SmallTowns, States, BigStates, SmallStates:
		return true
	}
	return false
}

func (m Mode) String() string { return string(m) }

// Category returns the dataset the mode reads from.
func (m Mode) Category() dataset.Category {
	switch m {
	case States, BigStates, SmallStates:
		return dataset.States
	default:
		return dataset.Cities
	}
}

// slice selects the part of the list the mode samples from, together with
// the strategy used on it.
func (m Mode) slice(pool sampler.Pool) (sampler.Pool, sampler.Strategy, error) {
	n := pool.Len()
	switch m {
	case BigCities:
		p, err := pool.Head(n / 3)
		return p, sampler.Linear{Direction: sampler.Front}, err
	case SmallTowns:
		p, err := pool.Tail(n / 3)
		return p, sampler.Linear{Direction: sampler.Back}, err
	case BigStates:
		p, err := pool.Head(n / 2)
		return p, sampler.Linear{Direction: sampler.Front}, err
	case SmallStates:
		p, err := pool.Tail(n / 2)
		return p, sampler.Linear{Direction: sampler.Back}, err
	default:
		return pool, sampler.Uniform{}, nil
	}
}
