package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"attachment-matching-service/internal/matching"
)

func TestNormalizeReference(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"all zeros", "0000", "0"},
		{"many zeros", "00000000000", "0"},
		{"leading zeros", "000123", "123"},
		{"rf structured reference", "RF00 0000 0000 1234", "RF1234"},
		{"rf all zeros", "RF0000", "RF0"},
		{"spaces between groups", "12 34 56", "123456"},
		{"extra spaces", "  12  34  56  ", "123456"},
		{"mixed case", "abc123def", "ABC123DEF"},
		{"lowercase rf prefix", "rf00987", "RF987"},
		{"special chars preserved", "12.34-56", "12.34-56"},
		{"plain grouped reference", "9876 543 2103", "98765432103"},
		{"zeros then digits grouped", "0000 0000 5550 0011 14", "5550001114"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matching.NormalizeReference(tt.input))
		})
	}
}

func TestNormalizeReference_Idempotent(t *testing.T) {
	inputs := []string{
		"", "   ", "0000", "000123", "RF00 0000 0000 1234",
		"rf661234000001", "12.34-56", "abc 123", "0",
	}
	for _, in := range inputs {
		once := matching.NormalizeReference(in)
		assert.Equal(t, once, matching.NormalizeReference(once), "input %q", in)
	}
}
