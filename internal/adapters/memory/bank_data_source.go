package memory

import (
	"NewBostonBank/internal/core/domain"
	"NewBostonBank/internal/core/ports"
	"context"
	"sync"

	"github.com/rs/zerolog"
)

var _ ports.BankDataSource = (*bankDataSource)(nil) // Ensure compliance

// bankDataSource keeps banks in an ordered slice for the lifetime of the process.
type bankDataSource struct {
	mu    sync.RWMutex
	banks []domain.Bank
	log   zerolog.Logger
}

// NewBankDataSource creates an in-memory data source holding the given banks.
// Pass domain.DefaultBanks() for the seeded mock store, or nil for an empty one.
func NewBankDataSource(seed []domain.Bank, baseLogger *zerolog.Logger) ports.BankDataSource {
	banks := make([]domain.Bank, len(seed))
	copy(banks, seed)

	log := baseLogger.With().Str("component", "memory_bank_source").Logger()
	log.Info().Int("seeded", len(banks)).Msg("In-memory bank data source initialized")

	return &bankDataSource{banks: banks, log: log}
}

// List returns a copy of all banks in insertion order.
func (s *bankDataSource) List(ctx context.Context) ([]domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Bank, len(s.banks))
	copy(out, s.banks)
	return out, nil
}

// Get finds the bank with the given account number.
func (s *bankDataSource) Get(ctx context.Context, accountNumber string) (domain.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(accountNumber)
	if i < 0 {
		return domain.Bank{}, domain.NewNotFound(accountNumber)
	}
	return s.banks[i], nil
}

// Create appends a bank unless its account number is already present.
func (s *bankDataSource) Create(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(bank.AccountNumber) >= 0 {
		s.log.Debug().Str("account_number", bank.AccountNumber).Msg("Rejected duplicate bank")
		return domain.Bank{}, domain.NewAlreadyExists(bank.AccountNumber)
	}

	s.banks = append(s.banks, bank)
	return bank, nil
}

// Update removes the existing bank and appends the new version at the end.
func (s *bankDataSource) Update(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(bank.AccountNumber)
	if i < 0 {
		return domain.Bank{}, domain.NewNotExists(bank.AccountNumber)
	}

	s.removeAt(i)
	s.banks = append(s.banks, bank)
	return bank, nil
}

// Delete removes the bank with the given account number.
func (s *bankDataSource) Delete(ctx context.Context, accountNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(accountNumber)
	if i < 0 {
		return domain.NewNotExists(accountNumber)
	}

	s.removeAt(i)
	return nil
}

// indexOf must be called with mu held.
func (s *bankDataSource) indexOf(accountNumber string) int {
	for i, b := range s.banks {
		if b.AccountNumber == accountNumber {
			return i
		}
	}
	return -1
}

// removeAt must be called with mu held for writing.
func (s *bankDataSource) removeAt(i int) {
	s.banks = append(s.banks[:i], s.banks[i+1:]...)
}
