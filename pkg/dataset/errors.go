package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetNotFound    = errors.New("dataset not found")
	ErrLocaleNotSupported = errors.New("locale not supported")
	ErrUnknownCategory    = errors.New("unknown dataset category")
	ErrEmptyDataset       = errors.New("dataset is empty")

	// Source errors
	ErrUnknownSource = errors.New("unknown dataset source")
	ErrSourceRead    = errors.New("failed to read dataset source")
	ErrInvalidBundle = errors.New("invalid dataset bundle")

	// S3-specific errors
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
)

// LocaleError reports a locale that has no dataset for a category.
type LocaleError struct {
	Category Category // empty for display-name lookups
	Locale   string
}

func (e *LocaleError) Error() string {
	if e.Category == "" {
		return fmt.Sprintf("locale %q not found in locale key", e.Locale)
	}
	return fmt.Sprintf("locale %q not supported for %s", e.Locale, e.Category)
}

func (e *LocaleError) Is(target error) bool {
	return target == ErrLocaleNotSupported
}
