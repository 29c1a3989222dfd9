package domain

// Bank is the single resource exposed by the service.
// Two banks are the same bank when their AccountNumber matches.
type Bank struct {
	AccountNumber         string  `json:"account_number"`
	Trust                 float64 `json:"trust"`
	DefaultTransactionFee int     `json:"default_transaction_fee"`
}

// DefaultBanks returns the records a fresh store is seeded with.
func DefaultBanks() []Bank {
	return []Bank{
		{AccountNumber: "1234", Trust: 3.14, DefaultTransactionFee: 17},
		{AccountNumber: "1010", Trust: 17.0, DefaultTransactionFee: 0},
		{AccountNumber: "5678", Trust: 0.0, DefaultTransactionFee: 100},
	}
}
