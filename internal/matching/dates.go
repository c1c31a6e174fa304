package matching

import (
	"math"
	"time"

	"attachment-matching-service/internal/models"
)

const dateLayout = "2006-01-02"

// DefaultDateToleranceDays is the accepted gap between a transaction date
// and any of an attachment's dates. It absorbs early payments, late
// payments and processing delays.
const DefaultDateToleranceDays = 15

// DatesCompatible reports whether the transaction date falls within
// toleranceDays of any attachment date, checked in fixed priority order:
// due date, invoicing date, receiving date. An unparsable attachment date
// skips that field only; an unparsable transaction date fails the check.
func DatesCompatible(txDate string, data *models.AttachmentData, toleranceDays int) bool {
	txParsed, err := time.Parse(dateLayout, txDate)
	if err != nil {
		return false
	}

	for _, field := range []*string{data.DueDate, data.InvoicingDate, data.ReceivingDate} {
		if field == nil || *field == "" {
			continue
		}
		attParsed, err := time.Parse(dateLayout, *field)
		if err != nil {
			continue
		}

		diffDays := math.Abs(txParsed.Sub(attParsed).Hours() / 24)
		if diffDays <= float64(toleranceDays) {
			return true
		}
	}

	return false
}
