package domain

import "fmt"

// Money is an amount in the smallest unit of its currency (cents for USD).
type Money struct {
	Cents    int64
	Currency Currency
}

func NewMoney(cents int64, currency Currency) Money {
	return Money{Cents: cents, Currency: currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Cents, m.Currency.Code)
}
