package models

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a bank statement transaction. Amount carries the
// payment direction in its sign (negative for outgoing payments). Optional
// fields are left empty/nil when the bank feed did not supply them.
type Transaction struct {
	ID            int64            `db:"id" json:"id"`
	TransactionID string           `db:"transaction_id" json:"transaction_id"`
	Amount        *decimal.Decimal `db:"amount" json:"amount,omitempty"`
	Date          string           `db:"transaction_date" json:"date,omitempty"`
	Contact       string           `db:"contact" json:"contact,omitempty"`
	Reference     string           `db:"reference" json:"reference,omitempty"`
	CreatedAt     time.Time        `db:"created_at" json:"-"`
	UpdatedAt     time.Time        `db:"updated_at" json:"-"`
}

// Attachment represents a supporting accounting document (invoice or
// receipt) wrapping its extracted field mapping.
type Attachment struct {
	ID           int64          `db:"id" json:"id"`
	AttachmentID string         `db:"attachment_id" json:"attachment_id"`
	Data         AttachmentData `db:"-" json:"data"`
	CreatedAt    time.Time      `db:"created_at" json:"-"`
	UpdatedAt    time.Time      `db:"updated_at" json:"-"`
}

// AttachmentData holds the optional fields extracted from a document. Date
// fields are pointers so an explicit null survives the round trip through
// JSON; nil and empty are both treated as absent when matching.
type AttachmentData struct {
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	Reference     string           `json:"reference,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	InvoicingDate *string          `json:"invoicing_date,omitempty"`
	ReceivingDate *string          `json:"receiving_date,omitempty"`
	Issuer        string           `json:"issuer,omitempty"`
	Recipient     string           `json:"recipient,omitempty"`
	Supplier      string           `json:"supplier,omitempty"`
}

// MatchLink records an accepted transaction/attachment pairing.
type MatchLink struct {
	ID              int64         `db:"id" json:"id"`
	TransactionID   sql.NullInt64 `db:"transaction_id" json:"transaction_id"`
	AttachmentID    sql.NullInt64 `db:"attachment_id" json:"attachment_id"`
	Method          string        `db:"method" json:"method"`
	ConfidenceScore int           `db:"confidence_score" json:"confidence_score"`
	CreatedAt       time.Time     `db:"created_at" json:"-"`
}

// MatchAudit represents an audit trail entry for ingestion and matching.
type MatchAudit struct {
	ID        int64           `db:"id" json:"id"`
	BatchID   string          `db:"batch_id" json:"batch_id"`
	Action    string          `db:"action" json:"action"`
	Details   json.RawMessage `db:"details" json:"details"`
	CreatedAt time.Time       `db:"created_at" json:"-"`
}

// MatchLink method constants
const (
	MethodReferenceExact = "reference_exact"
	MethodScored         = "scored"
)

// AuditAction constants
const (
	AuditActionIngested  = "ingested"
	AuditActionMatched   = "matched"
	AuditActionUnmatched = "unmatched"
)
