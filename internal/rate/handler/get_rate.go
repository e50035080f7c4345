package handler

import (
	"fmt"
	"net/http"
	"strings"

	"ratebank/internal/domain"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type GetRateResponse struct {
	From   string          `json:"from" example:"USD"`
	To     string          `json:"to" example:"EUR"`
	Key    string          `json:"key,omitempty" example:"usd_to_eur"`
	Rate   decimal.Decimal `json:"rate" swaggertype:"string" example:"0.92"`
	Source string          `json:"source" example:"direct"`
}

// GetRate godoc
// @Summary Get rate for a currency pair
// @Description Rates are directional: USD/EUR and EUR/USD are independent entries
// @Tags Rates
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Target currency code"
// @Success 200 {object} GetRateResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{from}/{to} [get]
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	from, to := pairParams(r)

	lookup, err := h.store.LookupRate(r.Context(), domain.Code(from), domain.Code(to))
	if err != nil {
		writeLookupError(w, err, "ups, couldn't get rate this time", logrus.Fields{"handler": "GetRate", "from": from, "to": to})
		return
	}
	if !lookup.Rate.Valid {
		writeError(w, http.StatusNotFound, fmt.Sprintf("%s: %s -> %s", domain.ErrUnknownRate, from, to))
		return
	}

	writeJSON(w, http.StatusOK, GetRateResponse{
		From:   from,
		To:     to,
		Key:    lookup.Key,
		Rate:   lookup.Rate.Decimal,
		Source: string(lookup.Source),
	})
}

func pairParams(r *http.Request) (string, string) {
	from := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "from")))
	to := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "to")))
	return from, to
}
