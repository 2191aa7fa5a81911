// Package normalize canonicalizes raw chat answers into typed profile fields.
// All functions are pure; the only failure modes are the explicit parse and
// invalid-input errors below.
package normalize

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Reshma22M/Flexa-ChatBot/pkg/utils"
)

var (
	// ErrParse means the text could not be read as the expected number.
	// Callers keep the user in the same dialogue state and re-prompt.
	ErrParse = errors.New("input is not a valid number")

	// ErrInvalidHeight means BMI was requested with a non-positive height.
	ErrInvalidHeight = errors.New("height must be greater than zero")
)

// YesNo maps free text to "Yes" or "No". Anything outside the accepted
// affirmative spellings counts as "No" — a lenient policy, not an error.
func YesNo(text string) string {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "y", "true", "1":
		return "Yes"
	default:
		return "No"
	}
}

// Sex maps free text to "Male" or "Female" by leading letter. Any other
// answer passes through trimmed and capitalized, again by policy.
func Sex(text string) string {
	v := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(v, "m"):
		return "Male"
	case strings.HasPrefix(v, "f"):
		return "Female"
	default:
		return utils.Capitalize(text)
	}
}

// Age parses a whole-number age.
func Age(text string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrParse
	}
	return age, nil
}

// Height parses a height in meters.
func Height(text string) (float64, error) {
	return parseFloat(text)
}

// Weight parses a weight in kilograms.
func Weight(text string) (float64, error) {
	return parseFloat(text)
}

func parseFloat(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, ErrParse
	}
	return v, nil
}

// BMI computes weight_kg / height_m².
func BMI(heightM, weightKG float64) (float64, error) {
	if heightM <= 0 {
		return 0, ErrInvalidHeight
	}
	return weightKG / (heightM * heightM), nil
}

// BMILevel buckets a BMI value into the four standard categories.
func BMILevel(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
