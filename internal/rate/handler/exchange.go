package handler

import (
	"errors"
	"net/http"

	"ratebank/internal/domain"
	"ratebank/internal/exchange"

	"github.com/sirupsen/logrus"
)

type ExchangeRequest struct {
	Amount   int64  `json:"amount" example:"1000"`
	Currency string `json:"currency" example:"USD"`
	To       string `json:"to" example:"EUR"`
	Rounding string `json:"rounding,omitempty" example:"half_even"`
}

type ExchangeResponse struct {
	Amount   int64  `json:"amount" example:"920"`
	Currency string `json:"currency" example:"EUR"`
}

const (
	exchangeOK              = "ok"
	exchangeUnknownCurrency = "unknown_currency"
	exchangeUnknownRate     = "unknown_rate"
	exchangeOutOfRange      = "out_of_range"
	exchangeError           = "error"
)

// Exchange godoc
// @Summary Convert money
// @Description Convert an amount in subunits (cents) of one currency into another
// @Tags Exchange
// @Accept json
// @Produce json
// @Param request body ExchangeRequest true "Amount to convert"
// @Success 200 {object} ExchangeResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /exchange [post]
func (h *Handler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req ExchangeRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	round, err := exchange.RoundingByName(req.Rounding)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	from, err := h.currencies.Resolve(domain.Code(req.Currency))
	if err != nil {
		h.observe(exchangeUnknownCurrency)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	converted, err := h.converter.ExchangeWith(r.Context(), domain.NewMoney(req.Amount, from), domain.Code(req.To), round)
	if err != nil {
		h.observe(exchangeResult(err))
		writeLookupError(w, err, "ups, couldn't exchange this time",
			logrus.Fields{"handler": "Exchange", "from": from.Code, "to": req.To})
		return
	}

	h.observe(exchangeOK)
	writeJSON(w, http.StatusOK, ExchangeResponse{Amount: converted.Cents, Currency: converted.Currency.Code})
}

func (h *Handler) observe(result string) {
	if h.observer != nil {
		h.observer.ObserveExchange(result)
	}
}

func exchangeResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownCurrency):
		return exchangeUnknownCurrency
	case errors.Is(err, domain.ErrUnknownRate):
		return exchangeUnknownRate
	case errors.Is(err, domain.ErrAmountOutOfRange):
		return exchangeOutOfRange
	default:
		return exchangeError
	}
}
