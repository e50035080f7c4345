package exchange

import (
	"context"
	"fmt"
	"math"

	"ratebank/internal/domain"

	"github.com/shopspring/decimal"
)

type CurrencyResolver interface {
	Resolve(ref domain.CurrencyRef) (domain.Currency, error)
}

// RateSource is satisfied by *rate.Store.
type RateSource interface {
	GetRate(ctx context.Context, from, to domain.CurrencyRef) (decimal.NullDecimal, error)
}

// Converter converts Money between currencies using the rates of a RateSource.
type Converter struct {
	rates      RateSource
	currencies CurrencyResolver
	rounding   RoundingFunc
}

type Option func(c *Converter)

// WithRounding sets the default rounding used when a call passes none.
func WithRounding(fn RoundingFunc) Option {
	return func(c *Converter) {
		c.rounding = fn
	}
}

// Exchange converts amount into the to currency with the default rounding.
func (c *Converter) Exchange(ctx context.Context, amount domain.Money, to domain.CurrencyRef) (domain.Money, error) {
	return c.ExchangeWith(ctx, amount, to, nil)
}

// ExchangeWith converts amount into the to currency. A non-nil round takes precedence
// over the converter default; without either the result is truncated toward zero.
func (c *Converter) ExchangeWith(ctx context.Context, amount domain.Money, to domain.CurrencyRef, round RoundingFunc) (domain.Money, error) {
	target, err := c.currencies.Resolve(to)
	if err != nil {
		return domain.Money{}, err
	}
	if domain.NormalizeCode(amount.Currency) == domain.NormalizeCode(target) {
		return amount, nil
	}

	source, err := c.currencies.Resolve(amount.Currency)
	if err != nil {
		return domain.Money{}, err
	}

	rate, err := c.rates.GetRate(ctx, source, target)
	if err != nil {
		return domain.Money{}, err
	}
	if !rate.Valid {
		return domain.Money{}, fmt.Errorf("%w: %s -> %s", domain.ErrUnknownRate, source.Code, target.Code)
	}

	converted, _ := convert(amount.Cents, source, target, rate.Decimal).Float64()
	if !inInt64Range(converted) {
		return domain.Money{}, fmt.Errorf("%w: %d %s -> %s", domain.ErrAmountOutOfRange, amount.Cents, source.Code, target.Code)
	}
	return domain.NewMoney(c.roundingFor(round)(converted), target), nil
}

func (c *Converter) roundingFor(round RoundingFunc) RoundingFunc {
	switch {
	case round != nil:
		return round
	case c.rounding != nil:
		return c.rounding
	default:
		return Truncate
	}
}

// inInt64Range reports whether every rounding policy maps amount onto a valid int64.
// float64(math.MaxInt64) rounds up to 2^63, which is itself out of range. NaN fails both.
func inInt64Range(amount float64) bool {
	return amount >= math.MinInt64 && amount < math.MaxInt64
}

// convert scales cents into target subunits and applies rate without intermediate rounding.
func convert(cents int64, from, to domain.Currency, rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(cents).
		Mul(decimal.NewFromInt(to.SubunitToUnit)).
		Mul(rate).
		Div(decimal.NewFromInt(from.SubunitToUnit))
}

func NewConverter(rates RateSource, currencies CurrencyResolver, opts ...Option) *Converter {
	c := &Converter{rates: rates, currencies: currencies}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
