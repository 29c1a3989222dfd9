package services

import (
	"NewBostonBank/internal/core/domain"
	"NewBostonBank/internal/core/ports"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var _ ports.BankService = (*BankService)(nil) // Ensure compliance

// BankService delegates bank operations to a data source and announces
// successful writes on the event bus.
type BankService struct {
	dataSource ports.BankDataSource
	bus        ports.EventBus
	log        zerolog.Logger
}

// NewBankService creates the service. bus may be nil when nobody listens.
func NewBankService(dataSource ports.BankDataSource, bus ports.EventBus, baseLogger *zerolog.Logger) *BankService {
	return &BankService{
		dataSource: dataSource,
		bus:        bus,
		log:        baseLogger.With().Str("component", "bank_service").Logger(),
	}
}

// GetBanks returns every bank in the data source.
func (s *BankService) GetBanks(ctx context.Context) ([]domain.Bank, error) {
	return s.dataSource.List(ctx)
}

// GetBank returns the bank matching accountNumber.
func (s *BankService) GetBank(ctx context.Context, accountNumber string) (domain.Bank, error) {
	return s.dataSource.Get(ctx, accountNumber)
}

// AddBank creates a new bank from the received data.
func (s *BankService) AddBank(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	created, err := s.dataSource.Create(ctx, bank)
	if err != nil {
		return domain.Bank{}, err
	}
	s.publish(ctx, ports.TopicBankCreated, created)
	return created, nil
}

// UpdateBank replaces the bank carrying the same account number.
func (s *BankService) UpdateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	updated, err := s.dataSource.Update(ctx, bank)
	if err != nil {
		return domain.Bank{}, err
	}
	s.publish(ctx, ports.TopicBankUpdated, updated)
	return updated, nil
}

// DeleteBank removes the bank with the given account number.
func (s *BankService) DeleteBank(ctx context.Context, accountNumber string) error {
	if err := s.dataSource.Delete(ctx, accountNumber); err != nil {
		return err
	}
	s.publish(ctx, ports.TopicBankDeleted, domain.Bank{AccountNumber: accountNumber})
	return nil
}

// publish never fails the caller; the write has already happened.
func (s *BankService) publish(ctx context.Context, topic string, bank domain.Bank) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, topic, bank); err != nil {
		s.log.Warn().Err(err).Str("topic", topic).Str("account_number", bank.AccountNumber).Msg("Failed to publish bank event")
	}
}

// Seed creates each bank that the data source does not hold yet, in order.
// Banks already present are left untouched.
func Seed(ctx context.Context, ds ports.BankDataSource, banks []domain.Bank) (int, error) {
	created := 0
	for _, b := range banks {
		_, err := ds.Create(ctx, b)
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrUnprocessableEntity):
		default:
			return created, fmt.Errorf("seed bank %s: %w", b.AccountNumber, err)
		}
	}
	return created, nil
}
