package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHost is returned when a site key cannot be derived from the input.
var ErrInvalidHost = errors.New("invalid host")

// ErrInvalidSettings is returned when settings fail validation.
var ErrInvalidSettings = errors.New("invalid settings")

func invalidSettings(problems []string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(problems, "; "))
}
