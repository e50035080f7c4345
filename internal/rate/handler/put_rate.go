package handler

import (
	"net/http"

	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type PutRateRequest struct {
	Rate decimal.Decimal `json:"rate" swaggertype:"string" example:"1.33"`
}

type PutRateResponse struct {
	Key  string          `json:"key" example:"usd_to_eur"`
	Rate decimal.Decimal `json:"rate" swaggertype:"string" example:"1.33"`
}

// PutRate godoc
// @Summary Set rate for a currency pair
// @Description Store the from -> to rate exactly as given
// @Tags Rates
// @Accept json
// @Produce json
// @Param from path string true "Source currency code"
// @Param to path string true "Target currency code"
// @Param request body PutRateRequest true "New rate"
// @Success 200 {object} PutRateResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /rates/{from}/{to} [put]
func (h *Handler) PutRate(w http.ResponseWriter, r *http.Request) {
	var req PutRateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Rate.IsPositive() {
		writeError(w, http.StatusBadRequest, "rate must be positive")
		return
	}

	from, to := pairParams(r)
	fields := logrus.Fields{"handler": "PutRate", "from": from, "to": to}

	key, err := h.store.RateKeyFor(domain.Code(from), domain.Code(to))
	if err != nil {
		writeLookupError(w, err, "ups, couldn't set rate this time", fields)
		return
	}
	stored, err := h.store.SetRate(r.Context(), domain.Code(from), domain.Code(to), req.Rate)
	if err != nil {
		writeLookupError(w, err, "ups, couldn't set rate this time", fields)
		return
	}

	writeJSON(w, http.StatusOK, PutRateResponse{Key: key, Rate: stored})
}
