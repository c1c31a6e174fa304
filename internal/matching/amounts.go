package matching

import "github.com/shopspring/decimal"

// Amount comparison tolerances. The lenient tolerance absorbs small
// legitimate banking differences (fees, rounding at payment time); the
// strict one applies once a pair is flagged as a precision mismatch and
// effectively rejects it.
var (
	strictAmountTolerance  = decimal.RequireFromString("0.002")
	lenientAmountTolerance = decimal.RequireFromString("0.011")

	oneCent         = decimal.RequireFromString("0.01")
	centEpsilon     = decimal.RequireFromString("0.001")
	ninetyNineCents = decimal.RequireFromString("0.99")
	one             = decimal.NewFromInt(1)
)

// amountsMatch is the hard amount gate: both magnitudes must agree within
// the context-sensitive tolerance or the pair scores zero.
func amountsMatch(txAbs, attAbs decimal.Decimal) bool {
	diff := attAbs.Sub(txAbs).Abs()

	tolerance := lenientAmountTolerance
	if isPrecisionMismatch(txAbs, attAbs, diff) {
		tolerance = strictAmountTolerance
	}

	return diff.LessThanOrEqual(tolerance)
}

// isPrecisionMismatch distinguishes a data-entry precision error from a
// legitimate small banking difference. Two cases flag a mismatch:
//
//  1. Extreme precision difference, e.g. 123.456789 recorded against
//     123.46: the decimal-place counts differ by more than 3 and the finer
//     value carries more than 4 decimals.
//  2. An exact one-cent difference between two round-cent values that is
//     not the X.99 vs (X+1).00 payment rounding pattern, when at least one
//     side is a whole amount.
func isPrecisionMismatch(txAbs, attAbs, diff decimal.Decimal) bool {
	txPlaces := decimalPlaces(txAbs)
	attPlaces := decimalPlaces(attAbs)

	if absInt(txPlaces-attPlaces) > 3 && max(txPlaces, attPlaces) > 4 {
		return true
	}

	if diff.Sub(oneCent).Abs().LessThan(centEpsilon) {
		if isRoundToCent(txAbs) && isRoundToCent(attAbs) {
			if !isBankingRoundingPattern(txAbs, attAbs) && (hasZeroCents(txAbs) || hasZeroCents(attAbs)) {
				return true
			}
		}
	}

	return false
}

// decimalPlaces counts digits after the decimal point in the value's
// minimal representation (trailing zeros trimmed by decimal.String).
func decimalPlaces(d decimal.Decimal) int {
	s := d.String()
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return len(s) - i - 1
		}
	}
	return 0
}

// isRoundToCent reports whether the value has no fractional-cent remainder.
func isRoundToCent(d decimal.Decimal) bool {
	return decimalPlaces(d) <= 2
}

// hasZeroCents reports whether the value is a whole amount.
func hasZeroCents(d decimal.Decimal) bool {
	return d.Mod(one).IsZero()
}

// isBankingRoundingPattern detects the canonical X.99 vs (X+1).00 pair,
// which banks routinely produce and which must stay within the lenient
// tolerance.
func isBankingRoundingPattern(a, b decimal.Decimal) bool {
	aCents := a.Mod(one)
	bCents := b.Mod(one)
	return (aCents.Equal(ninetyNineCents) && bCents.IsZero()) ||
		(bCents.Equal(ninetyNineCents) && aCents.IsZero())
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
