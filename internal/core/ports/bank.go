package ports

import (
	"NewBostonBank/internal/core/domain"
	"context"
)

// BankDataSource defines the storage operations for Banks.
// Implementations report missing or duplicate records with *domain.Error.
type BankDataSource interface {
	// List returns every bank in insertion order. Updated banks move to the end.
	List(ctx context.Context) ([]domain.Bank, error)

	// Get finds a bank by its account number.
	Get(ctx context.Context, accountNumber string) (domain.Bank, error)

	// Create appends a bank whose account number is not yet taken.
	Create(ctx context.Context, bank domain.Bank) (domain.Bank, error)

	// Update replaces the bank with the same account number.
	Update(ctx context.Context, bank domain.Bank) (domain.Bank, error)

	Delete(ctx context.Context, accountNumber string) error
}

// BankService is the inbound port the HTTP adapter depends on.
type BankService interface {
	GetBanks(ctx context.Context) ([]domain.Bank, error)
	GetBank(ctx context.Context, accountNumber string) (domain.Bank, error)
	AddBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	UpdateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	DeleteBank(ctx context.Context, accountNumber string) error
}
