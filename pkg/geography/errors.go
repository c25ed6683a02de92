package geography

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned for an unknown geography mode.
var ErrInvalidMode = errors.New("invalid geography mode")

// GeographyError reports a request the place list of a locale cannot serve.
type GeographyError struct {
	Mode       Mode
	Locale     string
	LocaleName string // English name of the locale, empty if unknown
	Requested  int
	Available  int
	Err        error
}

func (e *GeographyError) Error() string {
	country := e.Locale
	if e.LocaleName != "" {
		country = fmt.Sprintf("%s (%s)", e.LocaleName, e.Locale)
	}
	return fmt.Sprintf("%s: %d places requested, only %d available for %s: %v",
		e.Mode, e.Requested, e.Available, country, e.Err)
}

func (e *GeographyError) Unwrap() error {
	return e.Err
}
