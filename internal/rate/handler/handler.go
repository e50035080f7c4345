package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"ratebank/internal/domain"
	"ratebank/internal/exchange"
	"ratebank/internal/rate"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const maxBodyBytes = 1024

type RateStore interface {
	LookupRate(ctx context.Context, from, to domain.CurrencyRef) (rate.RateLookup, error)
	LookupAllRates(ctx context.Context) (rate.TableLookup, error)
	SetRate(ctx context.Context, from, to domain.CurrencyRef, r decimal.Decimal) (decimal.Decimal, error)
	RateKeyFor(from, to domain.CurrencyRef) (string, error)
}

type Converter interface {
	ExchangeWith(ctx context.Context, amount domain.Money, to domain.CurrencyRef, round exchange.RoundingFunc) (domain.Money, error)
}

type CurrencyCatalog interface {
	Resolve(ref domain.CurrencyRef) (domain.Currency, error)
	SupportedCodes() []string
}

type ExchangeObserver interface {
	ObserveExchange(result string)
}

type Handler struct {
	store      RateStore
	converter  Converter
	currencies CurrencyCatalog
	observer   ExchangeObserver
}

func NewRateHandler(store RateStore, converter Converter, currencies CurrencyCatalog, observer ExchangeObserver) *Handler {
	return &Handler{store: store, converter: converter, currencies: currencies, observer: observer}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, statusCode int, errorMsg string) {
	writeJSON(w, statusCode, errorResponse{
		Error: errorMsg,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// writeLookupError maps domain errors to client errors; anything else is logged and
// reported as a generic 500 with msg.
func writeLookupError(w http.ResponseWriter, err error, msg string, fields logrus.Fields) {
	switch {
	case errors.Is(err, domain.ErrUnknownCurrency):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownRate):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAmountOutOfRange):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logrus.WithError(err).WithFields(fields).Error(msg)
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
