package numeric

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a value cannot be parsed as a
// monetary amount
var ErrInvalidAmount = errors.New("invalid amount")

// Amount is a monetary value stored as integer cents. It accepts both
// JSON numbers and numeric strings on input, so clients that send
// "12.50" and clients that send 12.5 both parse to 1250 cents.
type Amount int64

// UnmarshalJSON parses a JSON number or numeric string into cents
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = 0
		return nil
	}
	s = strings.Trim(s, `"`)

	cents, err := ParseCents(s)
	if err != nil {
		return err
	}
	*a = Amount(cents)
	return nil
}

// MarshalJSON emits the amount as a decimal number
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Float64())
}

// Cents returns the raw integer cents value
func (a Amount) Cents() int64 {
	return int64(a)
}

// Float64 returns the amount as a decimal value
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// String formats the amount with two decimal places
func (a Amount) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', 2, 64)
}

// FromFloat converts a decimal value to cents, rounding half away
// from zero
func FromFloat(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// ParseCents parses a decimal string into integer cents without going
// through floating point for the integral part
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	// Normalize the fraction to exactly two digits, rounding the third
	var frac int64
	switch {
	case fracPart == "":
	case len(fracPart) == 1:
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		frac *= 10
	case len(fracPart) == 2:
		frac, err = strconv.ParseInt(fracPart, 10, 64)
	default:
		frac, err = strconv.ParseInt(fracPart[:2], 10, 64)
		if err == nil && fracPart[2] >= '5' && fracPart[2] <= '9' {
			frac++
		}
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	cents := whole*100 + frac
	if neg {
		cents = -cents
	}
	return cents, nil
}
