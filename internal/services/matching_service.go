package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"attachment-matching-service/internal/matching"
	"attachment-matching-service/internal/models"
	"attachment-matching-service/internal/repositories"
)

// MatchingService runs single-record match queries against the stored,
// not-yet-linked records and persists accepted links. Each query is
// independent and re-scans the current candidate set.
type MatchingService struct {
	db              *sql.DB
	matcher         *matching.Matcher
	transactionRepo repositories.TransactionRepository
	attachmentRepo  repositories.AttachmentRepository
	linkRepo        repositories.LinkRepository
	log             zerolog.Logger
}

func NewMatchingService(
	db *sql.DB,
	matcher *matching.Matcher,
	transactionRepo repositories.TransactionRepository,
	attachmentRepo repositories.AttachmentRepository,
	linkRepo repositories.LinkRepository,
	log zerolog.Logger,
) *MatchingService {
	return &MatchingService{
		db:              db,
		matcher:         matcher,
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
		linkRepo:        linkRepo,
		log:             log,
	}
}

// MatchQueryResult is the outcome of one match query: exactly one matched
// record, or an explicit no-match.
type MatchQueryResult struct {
	Matched         bool                `json:"matched"`
	Method          string              `json:"method,omitempty"`
	ConfidenceScore int                 `json:"confidence_score,omitempty"`
	Transaction     *models.Transaction `json:"transaction,omitempty"`
	Attachment      *models.Attachment  `json:"attachment,omitempty"`
}

// MatchTransaction finds the best attachment for one stored transaction
// among all attachments that are not linked yet, persisting the link when
// one is found.
func (s *MatchingService) MatchTransaction(transactionID string) (*MatchQueryResult, error) {
	transaction, err := s.transactionRepo.GetTransactionByTransactionID(transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	candidates, err := s.attachmentRepo.GetUnmatchedAttachments()
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate attachments: %w", err)
	}

	match := s.matcher.MatchAttachment(transaction, candidates)
	if match == nil {
		s.log.Info().Str("transaction_id", transactionID).Msg("no matching attachment")
		return &MatchQueryResult{Matched: false}, nil
	}

	link := &models.MatchLink{
		TransactionID:   sql.NullInt64{Int64: transaction.ID, Valid: true},
		AttachmentID:    sql.NullInt64{Int64: match.Attachment.ID, Valid: true},
		Method:          match.Method,
		ConfidenceScore: match.Score,
	}
	if err := s.persistLink(link); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("transaction_id", transactionID).
		Str("attachment_id", match.Attachment.AttachmentID).
		Str("method", match.Method).
		Int("score", match.Score).
		Msg("matched transaction to attachment")

	return &MatchQueryResult{
		Matched:         true,
		Method:          match.Method,
		ConfidenceScore: match.Score,
		Attachment:      match.Attachment,
	}, nil
}

// MatchAttachment is the mirror query: best transaction for one stored
// attachment.
func (s *MatchingService) MatchAttachment(attachmentID string) (*MatchQueryResult, error) {
	attachment, err := s.attachmentRepo.GetAttachmentByAttachmentID(attachmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	candidates, err := s.transactionRepo.GetUnmatchedTransactions()
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate transactions: %w", err)
	}

	match := s.matcher.MatchTransaction(attachment, candidates)
	if match == nil {
		s.log.Info().Str("attachment_id", attachmentID).Msg("no matching transaction")
		return &MatchQueryResult{Matched: false}, nil
	}

	link := &models.MatchLink{
		TransactionID:   sql.NullInt64{Int64: match.Transaction.ID, Valid: true},
		AttachmentID:    sql.NullInt64{Int64: attachment.ID, Valid: true},
		Method:          match.Method,
		ConfidenceScore: match.Score,
	}
	if err := s.persistLink(link); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("attachment_id", attachmentID).
		Str("transaction_id", match.Transaction.TransactionID).
		Str("method", match.Method).
		Int("score", match.Score).
		Msg("matched attachment to transaction")

	return &MatchQueryResult{
		Matched:         true,
		Method:          match.Method,
		ConfidenceScore: match.Score,
		Transaction:     match.Transaction,
	}, nil
}

// GetUnmatchedRecords lists the records on both sides that have no link.
func (s *MatchingService) GetUnmatchedRecords() (map[string]interface{}, error) {
	return s.linkRepo.GetUnmatchedRecords()
}

func (s *MatchingService) persistLink(link *models.MatchLink) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := s.linkRepo.CreateLink(tx, link); err != nil {
		return fmt.Errorf("failed to create match link: %w", err)
	}

	details, _ := json.Marshal(map[string]interface{}{
		"method":           link.Method,
		"confidence_score": link.ConfidenceScore,
		"transaction_id":   link.TransactionID.Int64,
		"attachment_id":    link.AttachmentID.Int64,
	})
	audit := &models.MatchAudit{
		BatchID: uuid.New().String(),
		Action:  models.AuditActionMatched,
		Details: details,
	}
	if err := s.linkRepo.CreateAuditEntry(tx, audit); err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
