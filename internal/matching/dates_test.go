package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"attachment-matching-service/internal/matching"
	"attachment-matching-service/internal/models"
)

func strPtr(s string) *string { return &s }

func TestDatesCompatible(t *testing.T) {
	tests := []struct {
		name   string
		txDate string
		data   models.AttachmentData
		want   bool
	}{
		{"exact same day", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-07-15")}, true},
		{"14 days after due", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-07-01")}, true},
		{"15 days before due, boundary", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-07-30")}, true},
		{"15 days after due, boundary", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-06-30")}, true},
		{"16 days before due", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-07-31")}, false},
		{"16 days after due", "2024-07-15", models.AttachmentData{DueDate: strPtr("2024-06-29")}, false},
		{
			"second field rescues first",
			"2024-07-15",
			models.AttachmentData{InvoicingDate: strPtr("2024-08-01"), DueDate: strPtr("2024-07-20")},
			true,
		},
		{
			"receiving date alone",
			"2024-07-15",
			models.AttachmentData{ReceivingDate: strPtr("2024-07-10")},
			true,
		},
		{"invalid transaction date", "invalid", models.AttachmentData{DueDate: strPtr("2024-07-15")}, false},
		{"invalid attachment date", "2024-07-15", models.AttachmentData{DueDate: strPtr("invalid")}, false},
		{
			"invalid field skipped, valid field matches",
			"2024-07-15",
			models.AttachmentData{DueDate: strPtr("not-a-date"), InvoicingDate: strPtr("2024-07-16")},
			true,
		},
		{"no date fields", "2024-07-15", models.AttachmentData{}, false},
		{"nil due date", "2024-07-15", models.AttachmentData{DueDate: nil}, false},
		{"empty string date", "2024-07-15", models.AttachmentData{DueDate: strPtr("")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.DatesCompatible(tt.txDate, &tt.data, matching.DefaultDateToleranceDays)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDatesCompatible_CustomTolerance(t *testing.T) {
	data := models.AttachmentData{DueDate: strPtr("2024-07-20")}
	assert.True(t, matching.DatesCompatible("2024-07-15", &data, 5))
	assert.False(t, matching.DatesCompatible("2024-07-15", &data, 4))
}
