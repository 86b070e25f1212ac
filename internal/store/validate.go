package store

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidColor is returned when a color value is not a #rrggbb hex code.
	ErrInvalidColor = errors.New("color must be a hex code like #16a34a")

	hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ValidateHexColor checks that v is a #rrggbb hex color. Empty values are
// allowed; callers substitute the current or default color.
func ValidateHexColor(v string) error {
	if v == "" {
		return nil
	}
	if !hexColorRe.MatchString(v) {
		return fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	return nil
}
