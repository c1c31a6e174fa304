package repositories

import (
	"database/sql"

	"attachment-matching-service/internal/models"
)

type LinkRepository interface {
	CreateLink(tx *sql.Tx, link *models.MatchLink) error
	CreateAuditEntry(tx *sql.Tx, audit *models.MatchAudit) error
	GetUnmatchedRecords() (map[string]interface{}, error)
}

type linkRepository struct {
	db *sql.DB
}

func NewLinkRepository(db *sql.DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) CreateLink(tx *sql.Tx, link *models.MatchLink) error {
	query := `
		INSERT INTO match_links (
			transaction_id, attachment_id, method, confidence_score
		) VALUES (?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		link.TransactionID,
		link.AttachmentID,
		link.Method,
		link.ConfidenceScore,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	link.ID = id
	return nil
}

func (r *linkRepository) CreateAuditEntry(tx *sql.Tx, audit *models.MatchAudit) error {
	query := `
		INSERT INTO match_audit (
			batch_id, action, details
		) VALUES (?, ?, ?)
	`
	result, err := tx.Exec(query,
		audit.BatchID,
		audit.Action,
		audit.Details,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	audit.ID = id
	return nil
}

func (r *linkRepository) GetUnmatchedRecords() (map[string]interface{}, error) {
	txQuery := `
		SELECT t.id, t.transaction_id, t.amount, t.transaction_date
		FROM transactions t
		LEFT JOIN match_links ml ON t.id = ml.transaction_id
		WHERE ml.id IS NULL
	`
	txRows, err := r.db.Query(txQuery)
	if err != nil {
		return nil, err
	}
	defer txRows.Close()

	var unmatchedTransactions []map[string]interface{}
	for txRows.Next() {
		var id int64
		var transactionID string
		var amount, transactionDate sql.NullString

		if err := txRows.Scan(&id, &transactionID, &amount, &transactionDate); err != nil {
			return nil, err
		}

		unmatchedTransactions = append(unmatchedTransactions, map[string]interface{}{
			"id":             id,
			"transaction_id": transactionID,
			"amount":         amount.String,
			"date":           transactionDate.String,
		})
	}
	if err = txRows.Err(); err != nil {
		return nil, err
	}

	attQuery := `
		SELECT a.id, a.attachment_id, a.total_amount, a.due_date
		FROM attachments a
		LEFT JOIN match_links ml ON a.id = ml.attachment_id
		WHERE ml.id IS NULL
	`
	attRows, err := r.db.Query(attQuery)
	if err != nil {
		return nil, err
	}
	defer attRows.Close()

	var unmatchedAttachments []map[string]interface{}
	for attRows.Next() {
		var id int64
		var attachmentID string
		var totalAmount, dueDate sql.NullString

		if err := attRows.Scan(&id, &attachmentID, &totalAmount, &dueDate); err != nil {
			return nil, err
		}

		unmatchedAttachments = append(unmatchedAttachments, map[string]interface{}{
			"id":            id,
			"attachment_id": attachmentID,
			"total_amount":  totalAmount.String,
			"due_date":      dueDate.String,
		})
	}
	if err = attRows.Err(); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"unmatched_transactions": unmatchedTransactions,
		"unmatched_attachments":  unmatchedAttachments,
	}, nil
}
