package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RateTable maps rate keys ("usd_to_eur") to rates.
type RateTable map[string]decimal.Decimal

func RateKey(from, to Currency) string {
	return strings.ToLower(from.Code + "_to_" + to.Code)
}

// RatePair is one direction of a conversion; a rate for it says nothing about the reverse.
type RatePair struct {
	From Currency
	To   Currency
}

func (p RatePair) Key() string { return RateKey(p.From, p.To) }

// Identity reports whether both sides are the same currency.
func (p RatePair) Identity() bool { return p.From.Code == p.To.Code }
