package rest

import (
	"NewBostonBank/internal/core/domain"
	"NewBostonBank/internal/core/ports"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// BankHandler translates HTTP requests into BankService calls.
type BankHandler struct {
	svc ports.BankService
	log zerolog.Logger
}

// NewBankHandler creates the HTTP handler set for /api/banks.
func NewBankHandler(svc ports.BankService, baseLogger *zerolog.Logger) *BankHandler {
	return &BankHandler{
		svc: svc,
		log: baseLogger.With().Str("component", "bank_handler").Logger(),
	}
}

// GetBanks handles GET /api/banks.
func (h *BankHandler) GetBanks(w http.ResponseWriter, r *http.Request) {
	banks, err := h.svc.GetBanks(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, banks)
}

// GetBank handles GET /api/banks/{accountNumber}.
func (h *BankHandler) GetBank(w http.ResponseWriter, r *http.Request) {
	bank, err := h.svc.GetBank(r.Context(), chi.URLParam(r, "accountNumber"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bank)
}

// AddBank handles POST /api/banks.
func (h *BankHandler) AddBank(w http.ResponseWriter, r *http.Request) {
	bank, ok := h.decodeBank(w, r)
	if !ok {
		return
	}
	created, err := h.svc.AddBank(r.Context(), bank)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateBank handles PATCH /api/banks. The account number comes from the body.
func (h *BankHandler) UpdateBank(w http.ResponseWriter, r *http.Request) {
	bank, ok := h.decodeBank(w, r)
	if !ok {
		return
	}
	updated, err := h.svc.UpdateBank(r.Context(), bank)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBank handles DELETE /api/banks/{accountNumber}.
func (h *BankHandler) DeleteBank(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteBank(r.Context(), chi.URLParam(r, "accountNumber")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeBank reads exactly one JSON bank from the body. Trailing data and a
// missing account number are both rejected as a bad request.
func (h *BankHandler) decodeBank(w http.ResponseWriter, r *http.Request) (domain.Bank, bool) {
	var bank domain.Bank
	err := decodeSingleJSON(r.Body, &bank)
	if err == nil && bank.AccountNumber == "" {
		err = errMissingAccountNumber
	}
	if err != nil {
		h.log.Debug().Err(err).Str("request_id", RequestIDFrom(r.Context())).Msg("Rejected malformed bank body")
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return domain.Bank{}, false
	}
	return bank, true
}

var (
	errMissingAccountNumber = errors.New("account_number is required")
	errTrailingData         = errors.New("unexpected data after JSON value")
)

func decodeSingleJSON(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
