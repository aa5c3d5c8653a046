package interview

import (
	"regexp"
	"strings"
)

var firstNumber = regexp.MustCompile(`\d+`)

// extractFieldValue stores free text verbatim except for experience, where
// the first number found in the input is taken as the year count. Inputs
// like "I worked from 2015" therefore extract "2015 years"; the screening
// flow keeps that behaviour as-is rather than guessing intent.
func extractFieldValue(field Field, raw string) string {
	raw = strings.TrimSpace(raw)
	if field != FieldExperience {
		return raw
	}

	if number := firstNumber.FindString(raw); number != "" {
		return number + " years"
	}
	return raw
}
