package domain

import "strings"

// CurrencyRef is accepted wherever a currency is expected: either a raw ISO code
// (Code) or a Currency that has already been resolved by a registry.
type CurrencyRef interface {
	isoCode() string
}

// Code is a raw, unresolved currency code such as "usd" or " EUR ".
type Code string

func (c Code) isoCode() string { return string(c) }

type Currency struct {
	Code          string
	SubunitToUnit int64
}

func (c Currency) isoCode() string { return c.Code }

func (c Currency) String() string { return c.Code }

// NormalizeCode trims and lowercases a ref's code, the form used for identity checks.
func NormalizeCode(ref CurrencyRef) string {
	if ref == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(ref.isoCode()))
}
