package repositories

import (
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"attachment-matching-service/internal/models"
)

type TransactionRepository interface {
	InsertTransaction(tx *sql.Tx, t *models.Transaction) error
	GetTransactionByTransactionID(transactionID string) (*models.Transaction, error)
	GetUnmatchedTransactions() ([]*models.Transaction, error)
}

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) InsertTransaction(tx *sql.Tx, t *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, amount, transaction_date, contact, reference
		) VALUES (?, ?, ?, ?, ?)
	`
	result, err := tx.Exec(query,
		t.TransactionID,
		nullDecimal(t.Amount),
		nullString(t.Date),
		nullString(t.Contact),
		nullString(t.Reference),
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func (r *transactionRepository) GetTransactionByTransactionID(transactionID string) (*models.Transaction, error) {
	query := `
		SELECT id, transaction_id, amount, transaction_date, contact,
		       reference, created_at, updated_at
		FROM transactions
		WHERE transaction_id = ?
	`
	t, err := scanTransaction(r.db.QueryRow(query, transactionID))
	if err == sql.ErrNoRows {
		return nil, errors.New("transaction not found")
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *transactionRepository) GetUnmatchedTransactions() ([]*models.Transaction, error) {
	query := `
		SELECT t.id, t.transaction_id, t.amount, t.transaction_date, t.contact,
		       t.reference, t.created_at, t.updated_at
		FROM transactions t
		LEFT JOIN match_links ml ON t.id = ml.transaction_id
		WHERE ml.id IS NULL
		ORDER BY t.id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	t := &models.Transaction{}
	var amount decimal.NullDecimal
	var date, contact, reference sql.NullString

	err := row.Scan(
		&t.ID,
		&t.TransactionID,
		&amount,
		&date,
		&contact,
		&reference,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if amount.Valid {
		t.Amount = &amount.Decimal
	}
	t.Date = date.String
	t.Contact = contact.String
	t.Reference = reference.String
	return t, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
