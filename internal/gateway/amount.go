package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halcyonpay/payctl/internal/errors"
)

// ParseAmount converts a decimal amount string like "12.34" into minor
// units (1234). The gateway works in minor units for two-decimal
// currencies. Amounts must be positive with at most two fraction digits.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, errors.NewPaymentAmountError(s)
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, errors.NewPaymentAmountError(s)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, errors.NewPaymentAmountError(s)
		}
		// ParseInt alone would accept a sign here and fold it into the
		// amount; the fraction must be bare digits.
		for _, r := range frac {
			if r < '0' || r > '9' {
				return 0, errors.NewPaymentAmountError(s)
			}
		}
		padded := frac + strings.Repeat("0", 2-len(frac))
		cents, err = strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return 0, errors.NewPaymentAmountError(s)
		}
	}

	// Overflow guard for absurdly large inputs.
	if units > (1<<62)/100 {
		return 0, errors.NewPaymentAmountError(s)
	}

	minor := units*100 + cents
	if minor <= 0 {
		return 0, errors.NewPaymentAmountError(s)
	}
	return minor, nil
}

// FormatAmount renders minor units as a decimal string, e.g. 1234 -> "12.34".
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}
