// Package money converts between the 2-decimal-place amount strings stored on
// bookings and payments and the integer minor-currency-unit amounts (paise for
// INR) the payment gateway expects. All arithmetic is integer based; amounts
// never pass through a float, so "19.99" converts to exactly 1999.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minorUnitsPerMajor = 100

var errMalformedAmount = errors.New("malformed decimal amount")

// ToMinorUnits parses a decimal amount string with at most two fractional
// digits ("60.00", "19.9", "42") into minor units.
func ToMinorUnits(amount string) (int64, error) {
	whole, frac, found := strings.Cut(strings.TrimSpace(amount), ".")

	if whole == "" {
		return 0, fmt.Errorf("%w: %q", errMalformedAmount, amount)
	}

	major, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || major < 0 {
		return 0, fmt.Errorf("%w: %q", errMalformedAmount, amount)
	}

	minor := int64(0)

	if found {
		if frac == "" || len(frac) > 2 {
			return 0, fmt.Errorf("%w: %q", errMalformedAmount, amount)
		}

		if len(frac) == 1 {
			frac += "0"
		}

		minor, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || minor < 0 {
			return 0, fmt.Errorf("%w: %q", errMalformedAmount, amount)
		}
	}

	return major*minorUnitsPerMajor + minor, nil
}

// FromMinorUnits formats minor units back into the canonical 2dp string form.
func FromMinorUnits(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/minorUnitsPerMajor, minor%minorUnitsPerMajor)
}
