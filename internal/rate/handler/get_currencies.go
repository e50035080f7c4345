package handler

import (
	"net/http"
)

type GetCurrenciesResponse struct {
	Codes []string `json:"codes" example:"EUR,JPY,USD"`
}

// GetCurrencies godoc
// @Summary List supported currencies
// @Description Retrieve all currency codes the service can store rates for
// @Tags Currencies
// @Produce json
// @Success 200 {object} GetCurrenciesResponse
// @Router /currencies [get]
func (h *Handler) GetCurrencies(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, GetCurrenciesResponse{
		Codes: h.currencies.SupportedCodes(),
	})
}
