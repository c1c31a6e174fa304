// Package matching implements the transaction/attachment matching core:
// reference normalization, fuzzy counterparty-name comparison, date-window
// compatibility and a multi-factor confidence score combining them.
//
// Everything here is a pure function over its inputs. No state is held
// across calls and input records are never mutated, so independent queries
// can run concurrently without coordination. Each query linearly re-scans
// its full candidate list.
package matching

import "attachment-matching-service/internal/models"

// MinConfidenceScore is the default acceptance threshold for scored
// (non-reference) matches.
const MinConfidenceScore = 5

// Config holds the matching knobs. The defaults are part of the matching
// contract; deployments may tune them but the documented behavior assumes
// DefaultConfig.
type Config struct {
	DateToleranceDays  int
	MinConfidenceScore int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		DateToleranceDays:  DefaultDateToleranceDays,
		MinConfidenceScore: MinConfidenceScore,
	}
}

// Matcher answers the two mirror queries: best attachment for a
// transaction, best transaction for an attachment.
type Matcher struct {
	cfg Config
}

// NewMatcher creates a matcher with the given config.
func NewMatcher(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// AttachmentMatch is the outcome of a transaction->attachment query.
type AttachmentMatch struct {
	Attachment *models.Attachment
	Method     string
	Score      int
}

// TransactionMatch is the outcome of an attachment->transaction query.
type TransactionMatch struct {
	Transaction *models.Transaction
	Method      string
	Score       int
}

// FindAttachment returns the best matching attachment for a transaction,
// or nil when no candidate qualifies.
func (m *Matcher) FindAttachment(tx *models.Transaction, attachments []*models.Attachment) *models.Attachment {
	if match := m.MatchAttachment(tx, attachments); match != nil {
		return match.Attachment
	}
	return nil
}

// FindTransaction returns the best matching transaction for an attachment,
// or nil when no candidate qualifies.
func (m *Matcher) FindTransaction(att *models.Attachment, transactions []*models.Transaction) *models.Transaction {
	if match := m.MatchTransaction(att, transactions); match != nil {
		return match.Transaction
	}
	return nil
}

// MatchAttachment finds the best attachment for a transaction along with
// how it was found.
//
// An exact normalized-reference match is a guaranteed 1:1 link: the first
// candidate carrying the same normalized reference is returned immediately,
// without scoring and regardless of its other fields. Only when that finds
// nothing are all candidates scored, and the best one accepted if it
// reaches the confidence threshold with a compatible counterparty. Ties go
// to the first-encountered candidate.
func (m *Matcher) MatchAttachment(tx *models.Transaction, attachments []*models.Attachment) *AttachmentMatch {
	// Empty normalized references never match each other, so the
	// short-circuit is entered only with a usable reference.
	if refNorm := NormalizeReference(tx.Reference); refNorm != "" {
		for _, att := range attachments {
			if att.Data.Reference == "" {
				continue
			}
			if NormalizeReference(att.Data.Reference) == refNorm {
				return &AttachmentMatch{Attachment: att, Method: models.MethodReferenceExact}
			}
		}
	}

	var best *AttachmentMatch
	for _, att := range attachments {
		score, compatible := m.Score(tx, att)
		if score < m.cfg.MinConfidenceScore || !compatible {
			continue
		}
		// Strictly-greater comparison keeps the first candidate on ties.
		if best == nil || score > best.Score {
			best = &AttachmentMatch{Attachment: att, Method: models.MethodScored, Score: score}
		}
	}
	return best
}

// MatchTransaction is the mirror of MatchAttachment.
func (m *Matcher) MatchTransaction(att *models.Attachment, transactions []*models.Transaction) *TransactionMatch {
	if refNorm := NormalizeReference(att.Data.Reference); refNorm != "" {
		for _, tx := range transactions {
			if tx.Reference == "" {
				continue
			}
			if NormalizeReference(tx.Reference) == refNorm {
				return &TransactionMatch{Transaction: tx, Method: models.MethodReferenceExact}
			}
		}
	}

	var best *TransactionMatch
	for _, tx := range transactions {
		score, compatible := m.Score(tx, att)
		if score < m.cfg.MinConfidenceScore || !compatible {
			continue
		}
		if best == nil || score > best.Score {
			best = &TransactionMatch{Transaction: tx, Method: models.MethodScored, Score: score}
		}
	}
	return best
}
