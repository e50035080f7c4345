package rate

import (
	"fmt"

	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
)

func parseRate(key, raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q under %q", domain.ErrInvalidStoredRate, raw, key)
	}
	return rate, nil
}

// formatRate writes rate with the scale it was given, so "1.330" stays "1.330".
func formatRate(rate decimal.Decimal) string {
	if exp := rate.Exponent(); exp < 0 {
		return rate.StringFixed(-exp)
	}
	return rate.String()
}

func decodeTable(raw map[string]string) (domain.RateTable, error) {
	table := make(domain.RateTable, len(raw))
	for key, v := range raw {
		rate, err := parseRate(key, v)
		if err != nil {
			return nil, err
		}
		table[key] = rate
	}
	return table, nil
}

func encodeTable(table domain.RateTable) map[string]string {
	raw := make(map[string]string, len(table))
	for key, rate := range table {
		raw[key] = formatRate(rate)
	}
	return raw
}
