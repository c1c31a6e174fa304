package matching

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestAmountsMatch(t *testing.T) {
	tests := []struct {
		name   string
		txAbs string
		attAbs string
		want   bool
	}{
		{"identical", "175.00", "175.00", true},
		{"half cent off", "50.00", "50.005", true},
		{"cent diff whole vs cents", "100.00", "100.01", false}, // precision mismatch, strict tolerance
		{"one cent on non-round values", "100.005", "100.015", true},
		{"banking rounding pattern", "99.99", "100.00", true},
		{"banking rounding pattern reversed", "100.00", "99.99", true},
		{"cent diff between round values", "200.00", "200.01", false},
		{"cent diff both whole", "35.00", "36.00", false},
		{"completely different", "175.00", "200.00", false},
		{"extreme precision difference", "123.456789", "123.46", false},
		{"moderate precision difference", "123.456", "123.46", true},
		{"five cent difference", "50.00", "50.05", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amountsMatch(dec(tt.txAbs), dec(tt.attAbs)))
		})
	}
}

func TestIsPrecisionMismatch_DecimalPlaceDelta(t *testing.T) {
	tx := dec("123.456789") // 6 decimals
	att := dec("123.46")    // 2 decimals
	diff := att.Sub(tx).Abs()
	assert.True(t, isPrecisionMismatch(tx, att, diff))

	// Delta of 3 places is still fine.
	tx = dec("123.45678")
	diff = dec("123.46").Sub(tx).Abs()
	assert.False(t, isPrecisionMismatch(tx, dec("123.46"), diff))
}

func TestIsPrecisionMismatch_CentOnRoundValues(t *testing.T) {
	// 200.00 vs 200.01: not the .99 pattern and one side has zero cents.
	assert.True(t, isPrecisionMismatch(dec("200.00"), dec("200.01"), dec("0.01")))

	// 99.99 vs 100.00 is the banking pattern, not a mismatch.
	assert.False(t, isPrecisionMismatch(dec("99.99"), dec("100.00"), dec("0.01")))

	// 200.49 vs 200.50: neither side has zero cents, tolerated.
	assert.False(t, isPrecisionMismatch(dec("200.49"), dec("200.50"), dec("0.01")))

	// 200.005 vs 200.015: not round to the cent, tolerated.
	assert.False(t, isPrecisionMismatch(dec("200.005"), dec("200.015"), dec("0.01")))
}

func TestDecimalPlaces(t *testing.T) {
	assert.Equal(t, 0, decimalPlaces(dec("175")))
	assert.Equal(t, 0, decimalPlaces(dec("175.00"))) // trailing zeros trimmed
	assert.Equal(t, 2, decimalPlaces(dec("175.05")))
	assert.Equal(t, 3, decimalPlaces(dec("50.005")))
	assert.Equal(t, 6, decimalPlaces(dec("123.456789")))
}

func TestRoundCentHelpers(t *testing.T) {
	assert.True(t, isRoundToCent(dec("100.25")))
	assert.True(t, isRoundToCent(dec("100")))
	assert.False(t, isRoundToCent(dec("100.005")))

	assert.True(t, hasZeroCents(dec("100")))
	assert.False(t, hasZeroCents(dec("100.01")))

	assert.True(t, isBankingRoundingPattern(dec("175.99"), dec("176.00")))
	assert.True(t, isBankingRoundingPattern(dec("176.00"), dec("175.99")))
	assert.False(t, isBankingRoundingPattern(dec("175.98"), dec("175.99")))
	assert.False(t, isBankingRoundingPattern(dec("175.99"), dec("176.01")))
}
