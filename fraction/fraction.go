// Package fraction converts between dimension strings such as "48 1/2" and decimal inches.
package fraction

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Precision is the denominator dimensions are rounded to when displayed.
const Precision = 16

// ErrInvalidFormat is returned when a dimension string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid dimension format")

var (
	unsignedInt     = regexp.MustCompile(`^[0-9]+$`)
	unsignedDecimal = regexp.MustCompile(`^([0-9]+\.?[0-9]*|\.[0-9]+)$`)
)

// Parse converts a decimal ("48.5"), whole ("48"), fraction ("3/4") or mixed
// number ("48 1/2") into decimal inches.
func Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidFormat)
	}

	parts := strings.Fields(s)
	switch len(parts) {
	case 1:
		if strings.Contains(parts[0], "/") {
			return parseFraction(parts[0])
		}
		return parseDecimal(parts[0])
	case 2:
		whole, err := parseWhole(parts[0])
		if err != nil {
			return 0, err
		}
		frac, err := parseFraction(parts[1])
		if err != nil {
			return 0, err
		}
		return whole + frac, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
}

func parseWhole(s string) (float64, error) {
	if !unsignedInt.MatchString(s) {
		return 0, fmt.Errorf("%w: whole part %q", ErrInvalidFormat, s)
	}
	return strconv.ParseFloat(s, 64)
}

func parseDecimal(s string) (float64, error) {
	if !unsignedDecimal.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return v, nil
}

func parseFraction(s string) (float64, error) {
	num, den, ok := strings.Cut(s, "/")
	if !ok || !unsignedInt.MatchString(num) || !unsignedInt.MatchString(den) {
		return 0, fmt.Errorf("%w: fraction %q", ErrInvalidFormat, s)
	}
	n, err := strconv.ParseUint(num, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fraction %q", ErrInvalidFormat, s)
	}
	d, err := strconv.ParseUint(den, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: fraction %q", ErrInvalidFormat, s)
	}
	if d == 0 {
		return 0, fmt.Errorf("%w: zero denominator in %q", ErrInvalidFormat, s)
	}
	return float64(n) / float64(d), nil
}

// RoundToSixteenth rounds inches to the nearest 1/16.
func RoundToSixteenth(inches float64) float64 {
	return math.Round(inches*Precision) / Precision
}

// Format renders inches as a mixed number rounded to the nearest 1/16,
// e.g. 48.5 -> "48 1/2", 0.75 -> "3/4", 0 -> "0". Values whose sixteenths do
// not fit an int64 are already whole and are rendered as plain decimals.
func Format(inches float64) string {
	scaled := math.Round(inches * Precision)
	if math.IsNaN(scaled) || math.Abs(scaled) >= 1<<63 {
		return strconv.FormatFloat(inches, 'f', -1, 64)
	}

	units := int64(scaled)
	if units < 0 {
		return "-" + formatUnits(-units)
	}
	return formatUnits(units)
}

func formatUnits(units int64) string {
	whole := units / Precision
	rem := units % Precision
	if rem == 0 {
		return strconv.FormatInt(whole, 10)
	}

	g := gcd(rem, Precision)
	num, den := rem/g, Precision/g
	if whole == 0 {
		return fmt.Sprintf("%d/%d", num, den)
	}
	return fmt.Sprintf("%d %d/%d", whole, num, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
