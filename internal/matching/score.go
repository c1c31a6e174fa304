package matching

import (
	"strings"

	"attachment-matching-service/internal/models"
)

// Score point weights. Amount agreement is required and anchors the score;
// date and counterparty signals add on top. A counterparty match is worth
// its specificity (minimum 1), so a more complete name match outranks a
// looser one among otherwise equal candidates.
const (
	pointsAmountMatch         = 3
	pointsDateCompatible      = 2
	pointsUnknownCounterparty = 1
)

// selfReferenceMarker filters out attachment names referring to the company
// whose books are being reconciled; those rows are placeholder data, not
// counterparties.
const selfReferenceMarker = "example company"

// CounterpartyNames extracts candidate counterparty names from an
// attachment: issuer (sales invoices), recipient (purchase invoices) and
// supplier (receipts), in that order, dropping self-references.
func CounterpartyNames(att *models.Attachment) []string {
	var names []string
	for _, name := range []string{att.Data.Issuer, att.Data.Recipient, att.Data.Supplier} {
		if name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(name), selfReferenceMarker) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Score computes the confidence score for one transaction/attachment pair
// and whether their counterparty information is compatible. Candidates need
// both a score at or above the configured minimum and counterparty
// compatibility to be accepted.
//
// A missing amount on either side, or amounts outside tolerance, reject the
// pair outright.
func (m *Matcher) Score(tx *models.Transaction, att *models.Attachment) (int, bool) {
	if tx.Amount == nil || att.Data.TotalAmount == nil {
		return 0, false
	}

	// Compare magnitudes: transactions encode direction in the sign,
	// documents store unsigned totals.
	if !amountsMatch(tx.Amount.Abs(), att.Data.TotalAmount.Abs()) {
		return 0, false
	}
	score := pointsAmountMatch

	if tx.Date != "" && DatesCompatible(tx.Date, &att.Data, m.cfg.DateToleranceDays) {
		score += pointsDateCompatible
	}

	counterparties := CounterpartyNames(att)

	switch {
	case tx.Contact != "":
		matched := false
		bestSpecificity := 0
		for _, name := range counterparties {
			if !NamesMatch(tx.Contact, name) {
				continue
			}
			matched = true
			if s := NameSpecificity(tx.Contact, name); s > bestSpecificity {
				bestSpecificity = s
			}
		}
		if !matched {
			// A named contact with no matching attachment name is a
			// conflict: no points, not compatible.
			return score, false
		}
		score += counterpartyPoints(bestSpecificity)
		return score, true

	case len(counterparties) > 0:
		// No contact on the transaction is not a conflict.
		return score + pointsUnknownCounterparty, true

	default:
		// Neither side carries counterparty information.
		return score + pointsUnknownCounterparty, true
	}
}

func counterpartyPoints(specificity int) int {
	switch {
	case specificity >= SpecificitySubset:
		return 5
	case specificity >= SpecificityExact:
		return 4
	case specificity >= SpecificityClose:
		return 3
	case specificity >= SpecificityPartial:
		return 2
	default:
		// Word-overlap match with no substring relation.
		return 1
	}
}
