package handler

import (
	"net/http"

	"ratebank/internal/domain"

	"github.com/sirupsen/logrus"
)

type GetRatesResponse struct {
	Rates  domain.RateTable `json:"rates" swaggertype:"object,string" example:"usd_to_eur:0.92"`
	Source string           `json:"source" example:"direct"`
}

// GetRates godoc
// @Summary List all rates
// @Description Return the whole stored rate table, or the fallback table when the store is empty or unreachable
// @Tags Rates
// @Produce json
// @Success 200 {object} GetRatesResponse
// @Failure 500 {object} errorResponse
// @Router /rates [get]
func (h *Handler) GetRates(w http.ResponseWriter, r *http.Request) {
	lookup, err := h.store.LookupAllRates(r.Context())
	if err != nil {
		writeLookupError(w, err, "ups, couldn't get rates this time", logrus.Fields{"handler": "GetRates"})
		return
	}

	writeJSON(w, http.StatusOK, GetRatesResponse{
		Rates:  lookup.Table,
		Source: string(lookup.Source),
	})
}
