package repositories

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"attachment-matching-service/internal/models"
)

type AttachmentRepository interface {
	InsertAttachment(tx *sql.Tx, a *models.Attachment) error
	GetAttachmentByAttachmentID(attachmentID string) (*models.Attachment, error)
	GetUnmatchedAttachments() ([]*models.Attachment, error)
}

type attachmentRepository struct {
	db *sql.DB
}

func NewAttachmentRepository(db *sql.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) InsertAttachment(tx *sql.Tx, a *models.Attachment) error {
	query := `
		INSERT INTO attachments (
			attachment_id, total_amount, reference, due_date, invoicing_date,
			receiving_date, issuer, recipient, supplier
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		a.AttachmentID,
		nullDecimal(a.Data.TotalAmount),
		nullString(a.Data.Reference),
		nullStringPtr(a.Data.DueDate),
		nullStringPtr(a.Data.InvoicingDate),
		nullStringPtr(a.Data.ReceivingDate),
		nullString(a.Data.Issuer),
		nullString(a.Data.Recipient),
		nullString(a.Data.Supplier),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = id
	return nil
}

func (r *attachmentRepository) GetAttachmentByAttachmentID(attachmentID string) (*models.Attachment, error) {
	query := `
		SELECT id, attachment_id, total_amount, reference, due_date,
		       invoicing_date, receiving_date, issuer, recipient, supplier,
		       created_at, updated_at
		FROM attachments
		WHERE attachment_id = ?
	`
	a, err := scanAttachment(r.db.QueryRow(query, attachmentID))
	if err == sql.ErrNoRows {
		return nil, errors.New("attachment not found")
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attachmentRepository) GetUnmatchedAttachments() ([]*models.Attachment, error) {
	query := `
		SELECT a.id, a.attachment_id, a.total_amount, a.reference, a.due_date,
		       a.invoicing_date, a.receiving_date, a.issuer, a.recipient, a.supplier,
		       a.created_at, a.updated_at
		FROM attachments a
		LEFT JOIN match_links ml ON a.id = ml.attachment_id
		WHERE ml.id IS NULL
		ORDER BY a.id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []*models.Attachment
	for rows.Next() {
		a, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return attachments, nil
}

func scanAttachment(row rowScanner) (*models.Attachment, error) {
	a := &models.Attachment{}
	var totalAmount decimal.NullDecimal
	var reference, dueDate, invoicingDate, receivingDate sql.NullString
	var issuer, recipient, supplier sql.NullString

	err := row.Scan(
		&a.ID,
		&a.AttachmentID,
		&totalAmount,
		&reference,
		&dueDate,
		&invoicingDate,
		&receivingDate,
		&issuer,
		&recipient,
		&supplier,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if totalAmount.Valid {
		a.Data.TotalAmount = &totalAmount.Decimal
	}
	a.Data.Reference = reference.String
	a.Data.DueDate = stringPtr(dueDate)
	a.Data.InvoicingDate = stringPtr(invoicingDate)
	a.Data.ReceivingDate = stringPtr(receivingDate)
	a.Data.Issuer = issuer.String
	a.Data.Recipient = recipient.String
	a.Data.Supplier = supplier.String
	return a, nil
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
