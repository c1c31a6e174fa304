package services

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"attachment-matching-service/internal/models"
	"attachment-matching-service/internal/repositories"
)

type IngestionService struct {
	db              *sql.DB
	transactionRepo repositories.TransactionRepository
	attachmentRepo  repositories.AttachmentRepository
	linkRepo        repositories.LinkRepository
}

func NewIngestionService(
	db *sql.DB,
	transactionRepo repositories.TransactionRepository,
	attachmentRepo repositories.AttachmentRepository,
	linkRepo repositories.LinkRepository,
) *IngestionService {
	return &IngestionService{
		db:              db,
		transactionRepo: transactionRepo,
		attachmentRepo:  attachmentRepo,
		linkRepo:        linkRepo,
	}
}

type TransactionInput struct {
	TransactionID string           `json:"transaction_id"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Date          string           `json:"date,omitempty"`
	Contact       string           `json:"contact,omitempty"`
	Reference     string           `json:"reference,omitempty"`
}

type AttachmentInput struct {
	AttachmentID string                `json:"attachment_id"`
	Data         models.AttachmentData `json:"data"`
}

type IngestionResult struct {
	Success      bool                   `json:"success"`
	BatchID      string                 `json:"batch_id"`
	RecordsCount int                    `json:"records_count"`
	Errors       []string               `json:"errors,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

func (s *IngestionService) IngestTransactions(transactions []TransactionInput) (*IngestionResult, error) {
	result := &IngestionResult{
		Success: true,
		BatchID: uuid.New().String(),
		Details: make(map[string]interface{}),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, input := range transactions {
		if input.TransactionID == "" {
			result.Errors = append(result.Errors, "transaction_id is required")
			continue
		}

		transaction := &models.Transaction{
			TransactionID: input.TransactionID,
			Amount:        input.Amount,
			Date:          input.Date,
			Contact:       input.Contact,
			Reference:     input.Reference,
		}

		if err := s.transactionRepo.InsertTransaction(tx, transaction); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to insert transaction %s: %v", input.TransactionID, err))
			continue
		}

		result.RecordsCount++
	}

	if err := s.writeIngestAudit(tx, result, "transactions", len(transactions)); err != nil {
		return nil, err
	}

	result.Success = len(result.Errors) == 0
	result.Details["total_records"] = len(transactions)
	result.Details["successful"] = result.RecordsCount
	result.Details["failed"] = len(result.Errors)

	if result.Success {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return result, nil
}

func (s *IngestionService) IngestAttachments(attachments []AttachmentInput) (*IngestionResult, error) {
	result := &IngestionResult{
		Success: true,
		BatchID: uuid.New().String(),
		Details: make(map[string]interface{}),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, input := range attachments {
		if input.AttachmentID == "" {
			result.Errors = append(result.Errors, "attachment_id is required")
			continue
		}

		attachment := &models.Attachment{
			AttachmentID: input.AttachmentID,
			Data:         input.Data,
		}

		if err := s.attachmentRepo.InsertAttachment(tx, attachment); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to insert attachment %s: %v", input.AttachmentID, err))
			continue
		}

		result.RecordsCount++
	}

	if err := s.writeIngestAudit(tx, result, "attachments", len(attachments)); err != nil {
		return nil, err
	}

	result.Success = len(result.Errors) == 0
	result.Details["total_records"] = len(attachments)
	result.Details["successful"] = result.RecordsCount
	result.Details["failed"] = len(result.Errors)

	if result.Success {
		if err := tx.Commit(); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
	}

	return result, nil
}

func (s *IngestionService) writeIngestAudit(tx *sql.Tx, result *IngestionResult, kind string, total int) error {
	if result.RecordsCount == 0 {
		return nil
	}

	details, _ := json.Marshal(map[string]interface{}{
		"kind":          kind,
		"total_records": total,
		"successful":    result.RecordsCount,
		"failed":        len(result.Errors),
	})

	audit := &models.MatchAudit{
		BatchID: result.BatchID,
		Action:  models.AuditActionIngested,
		Details: details,
	}
	if err := s.linkRepo.CreateAuditEntry(tx, audit); err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}
	return nil
}
