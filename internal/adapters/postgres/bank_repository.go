package postgres

import (
	"NewBostonBank/internal/core/domain"
	"NewBostonBank/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

var _ ports.BankDataSource = (*bankRepository)(nil) // Ensure compliance

type bankRepository struct {
	db  *DB
	log zerolog.Logger
}

// NewBankRepository creates a Postgres-backed bank data source.
// The banks table must exist; see DB.Migrate.
func NewBankRepository(db *DB, baseLogger *zerolog.Logger) ports.BankDataSource {
	return &bankRepository{
		db:  db,
		log: baseLogger.With().Str("component", "bank_repo").Logger(),
	}
}

// List returns every bank ordered by insertion (seq).
func (r *bankRepository) List(ctx context.Context) ([]domain.Bank, error) {
	query := `
		SELECT account_number, trust, default_transaction_fee
		FROM banks
		ORDER BY seq
	`
	rows, err := r.db.pool.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("Failed to query banks")
		return nil, fmt.Errorf("query banks: %w", err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		b, err := scanBank(rows)
		if err != nil {
			r.log.Error().Err(err).Msg("Failed during row scan for banks")
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, b)
	}

	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("Error iterating bank rows")
		return nil, fmt.Errorf("iterate banks: %w", err)
	}
	return banks, nil
}

// Get finds a bank by account number.
func (r *bankRepository) Get(ctx context.Context, accountNumber string) (domain.Bank, error) {
	query := `
		SELECT account_number, trust, default_transaction_fee
		FROM banks
		WHERE account_number = $1
	`
	b, err := scanBank(r.db.pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Bank{}, domain.NewNotFound(accountNumber)
		}
		r.log.Error().Err(err).Str("account_number", accountNumber).Msg("Failed to get bank")
		return domain.Bank{}, fmt.Errorf("get bank: %w", err)
	}
	return b, nil
}

// Create inserts a bank; an existing account number is rejected.
func (r *bankRepository) Create(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	query := `
		INSERT INTO banks (account_number, trust, default_transaction_fee)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_number) DO NOTHING
	`
	tag, err := r.db.pool.Exec(ctx, query, bank.AccountNumber, bank.Trust, bank.DefaultTransactionFee)
	if err != nil {
		r.log.Error().Err(err).Str("account_number", bank.AccountNumber).Msg("Failed to insert new bank")
		return domain.Bank{}, fmt.Errorf("insert bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Bank{}, domain.NewAlreadyExists(bank.AccountNumber)
	}
	return bank, nil
}

// Update overwrites the bank and moves it to the end of the listing order.
func (r *bankRepository) Update(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	query := `
		UPDATE banks
		SET trust = $2,
			default_transaction_fee = $3,
			seq = nextval(pg_get_serial_sequence('banks', 'seq'))
		WHERE account_number = $1
	`
	tag, err := r.db.pool.Exec(ctx, query, bank.AccountNumber, bank.Trust, bank.DefaultTransactionFee)
	if err != nil {
		r.log.Error().Err(err).Str("account_number", bank.AccountNumber).Msg("Failed to update bank")
		return domain.Bank{}, fmt.Errorf("update bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Bank{}, domain.NewNotExists(bank.AccountNumber)
	}
	return bank, nil
}

// Delete removes the bank with the given account number.
func (r *bankRepository) Delete(ctx context.Context, accountNumber string) error {
	tag, err := r.db.pool.Exec(ctx, `DELETE FROM banks WHERE account_number = $1`, accountNumber)
	if err != nil {
		r.log.Error().Err(err).Str("account_number", accountNumber).Msg("Failed to delete bank")
		return fmt.Errorf("delete bank: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotExists(accountNumber)
	}
	return nil
}

func scanBank(row pgx.Row) (domain.Bank, error) {
	var b domain.Bank
	err := row.Scan(&b.AccountNumber, &b.Trust, &b.DefaultTransactionFee)
	return b, err
}
