package currency

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"ratebank/internal/domain"
)

// Registry resolves currency codes to currencies. It is read only after construction
// and safe for concurrent use.
type Registry struct {
	byCode map[string]domain.Currency // read only copy, keyed by upper-case code
	codes  []string                   // read only copy, sorted
}

// Resolve returns the Currency for a raw code or passes an already resolved Currency
// through. Codes are matched case-insensitively after trimming whitespace.
func (r *Registry) Resolve(ref domain.CurrencyRef) (domain.Currency, error) {
	switch v := ref.(type) {
	case domain.Currency:
		if v.Code == "" || v.SubunitToUnit <= 0 {
			return domain.Currency{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, v.Code)
		}
		return v, nil
	case domain.Code:
		code := strings.ToUpper(strings.TrimSpace(string(v)))
		c, ok := r.byCode[code]
		if !ok {
			return domain.Currency{}, fmt.Errorf("%w: %q", domain.ErrUnknownCurrency, string(v))
		}
		return c, nil
	default:
		return domain.Currency{}, fmt.Errorf("%w: %v", domain.ErrUnknownCurrency, ref)
	}
}

func (r *Registry) SupportedCodes() []string {
	return slices.Clone(r.codes)
}

// NewRegistry builds a registry from the given currencies. Codes are upper-cased;
// currencies with an empty code or a non-positive subunit ratio are skipped.
func NewRegistry(currencies []domain.Currency) *Registry {
	byCode := make(map[string]domain.Currency, len(currencies))
	for _, c := range currencies {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" || c.SubunitToUnit <= 0 {
			continue
		}
		byCode[code] = domain.Currency{Code: code, SubunitToUnit: c.SubunitToUnit}
	}
	codes := slices.Collect(maps.Keys(byCode))
	slices.Sort(codes)

	return &Registry{
		byCode: byCode,
		codes:  codes,
	}
}

// NewDefaultRegistry returns a registry of the built-in ISO 4217 table extended (or
// overridden) by extra.
func NewDefaultRegistry(extra ...domain.Currency) *Registry {
	all := make([]domain.Currency, 0, len(isoCurrencies)+len(extra))
	all = append(all, isoCurrencies...)
	all = append(all, extra...)
	return NewRegistry(all)
}
