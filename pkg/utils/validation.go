package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinWindowSide is the smallest accepted window width or height.
	MinWindowSide = 100
	// MaxWindowSide is the largest accepted window width or height.
	MaxWindowSide = 10000
	// MaxInitialTabs bounds the number of tabs a notebook opens with.
	MaxInitialTabs = 64
)

var (
	// appIDRegex validates reverse-DNS application identifiers.
	appIDRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*(\.[a-zA-Z0-9_-]+)+$`)

	// objectIDRegex validates object names in UI descriptions.
	objectIDRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// ValidateAppID checks if an application ID is a reverse-DNS name like "com.github.notebook".
func ValidateAppID(id string) error {
	if id == "" {
		return fmt.Errorf("application ID cannot be empty")
	}

	if !appIDRegex.MatchString(id) {
		return fmt.Errorf("invalid application ID %q", id)
	}

	return nil
}

// ValidateObjectID checks if a UI object name is a valid identifier.
func ValidateObjectID(id string) error {
	if id == "" {
		return fmt.Errorf("object id cannot be empty")
	}

	if !objectIDRegex.MatchString(id) {
		return fmt.Errorf("invalid object id %q", id)
	}

	return nil
}

// ValidateWindowSize checks that both window dimensions are in range.
func ValidateWindowSize(width, height int) error {
	if width < MinWindowSide || width > MaxWindowSide {
		return fmt.Errorf("invalid window width %d", width)
	}

	if height < MinWindowSide || height > MaxWindowSide {
		return fmt.Errorf("invalid window height %d", height)
	}

	return nil
}

// ValidateTabCount checks the number of tabs a notebook starts with.
func ValidateTabCount(n int) error {
	if n < 0 || n > MaxInitialTabs {
		return fmt.Errorf("invalid tab count %d", n)
	}

	return nil
}

// ValidateRange checks that lower does not exceed upper and step is positive.
func ValidateRange(lower, upper, step float64) error {
	if lower > upper {
		return fmt.Errorf("invalid range: lower %g exceeds upper %g", lower, upper)
	}

	if step <= 0 {
		return fmt.Errorf("invalid step %g", step)
	}

	return nil
}

// ParseNumericInput parses a decimal number, ignoring surrounding spaces.
func ParseNumericInput(input string) (float64, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return 0, fmt.Errorf("numeric input cannot be empty")
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric input")
	}

	return value, nil
}
