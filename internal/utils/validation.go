package utils

import (
	"errors"
	"regexp"
)

// Compiled regular expressions for validation
var (
	// Canonical indicator names use letters, digits, spaces, and a few
	// punctuation marks: "GDP (US$)", "Urban Growth (%)", etc.
	validIndicatorPattern = regexp.MustCompile(`^[a-zA-Z0-9 ()$%,.+-]+$`)
)

// ValidateIndicatorName validates that an indicator name is safe and within
// reasonable limits. Whether the name exists in the dataset is checked
// separately against the loaded table.
func ValidateIndicatorName(name string) error {
	if name == "" {
		return errors.New("indicator cannot be empty")
	}

	if len(name) > 64 {
		return errors.New("indicator too long (max 64 characters)")
	}

	if !validIndicatorPattern.MatchString(name) {
		return errors.New("indicator contains invalid characters")
	}

	return nil
}

// ValidateYear validates that a year is a plausible four-digit value.
func ValidateYear(year int) error {
	if year < 1000 || year > 9999 {
		return errors.New("year must be a four-digit integer")
	}
	return nil
}

// ValidateYearRangeParams validates a start/end year pair and returns
// field-level errors suitable for a validation error response.
func ValidateYearRangeParams(start, end int) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateYear(start); err != nil {
		fieldErrors["startYear"] = append(fieldErrors["startYear"], err.Error())
	}

	if err := ValidateYear(end); err != nil {
		fieldErrors["endYear"] = append(fieldErrors["endYear"], err.Error())
	}

	if len(fieldErrors) == 0 && start > end {
		fieldErrors["endYear"] = append(fieldErrors["endYear"],
			"end year must not be before start year")
	}

	return fieldErrors
}
