package exchange

import (
	"context"
	"errors"
	"math"
	"testing"

	"ratebank/internal/adapters/memory"
	"ratebank/internal/currency"
	"ratebank/internal/domain"
	"ratebank/internal/rate"

	"github.com/bxcodec/faker/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRateSource struct{ mock.Mock }

func (m *MockRateSource) GetRate(ctx context.Context, from, to domain.CurrencyRef) (decimal.NullDecimal, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

var (
	usd = domain.Currency{Code: "USD", SubunitToUnit: 100}
	eur = domain.Currency{Code: "EUR", SubunitToUnit: 100}
	cad = domain.Currency{Code: "CAD", SubunitToUnit: 100}
	jpy = domain.Currency{Code: "JPY", SubunitToUnit: 1}
	aud = domain.Currency{Code: "AUD", SubunitToUnit: 100}
	gbp = domain.Currency{Code: "GBP", SubunitToUnit: 100}
)

func ceilPlusOne(amount float64) int64 { return int64(math.Ceil(amount)) + 1 }

func newStoreWithRate(t *testing.T, from, to domain.Currency, r string) *rate.Store {
	t.Helper()
	store := rate.NewStore(memory.NewHashStore(), currency.NewDefaultRegistry())
	_, err := store.SetRate(context.Background(), from, to, decimal.RequireFromString(r))
	require.NoError(t, err)
	return store
}

func TestConverter_Exchange_SameCurrencyPassesThrough(t *testing.T) {
	code := faker.Currency()
	registry := currency.NewDefaultRegistry(domain.Currency{Code: code, SubunitToUnit: 100})
	c, err := registry.Resolve(domain.Code(code))
	require.NoError(t, err)

	rates := new(MockRateSource)
	conv := NewConverter(rates, registry)

	for i := 0; i < 10; i++ {
		amount := domain.NewMoney(faker.UnixTime(), c)

		got, err := conv.Exchange(context.Background(), amount, domain.Code(code))
		require.NoError(t, err)
		require.Equal(t, amount, got)
	}

	rates.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestConverter_Exchange_USDToEUR(t *testing.T) {
	store := newStoreWithRate(t, usd, eur, "1.33")
	ctx := context.Background()

	cases := []struct {
		name  string
		opts  []Option
		cents int64
		round RoundingFunc
		want  int64
	}{
		{name: "whole result", cents: 100, want: 133},
		{name: "truncates by default", cents: 10, want: 13},
		{name: "per-call ceil", cents: 10, round: Ceil, want: 14},
		{name: "constructor ceil", opts: []Option{WithRounding(Ceil)}, cents: 10, want: 14},
		{name: "per-call overrides constructor", opts: []Option{WithRounding(Ceil)}, cents: 10, round: ceilPlusOne, want: 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conv := NewConverter(store, currency.NewDefaultRegistry(), tc.opts...)

			got, err := conv.ExchangeWith(ctx, domain.NewMoney(tc.cents, usd), domain.Code("EUR"), tc.round)
			require.NoError(t, err)
			require.Equal(t, domain.NewMoney(tc.want, eur), got)
		})
	}
}

func TestConverter_Exchange_LargeAmount(t *testing.T) {
	store := newStoreWithRate(t, usd, cad, "2.34")
	conv := NewConverter(store, currency.NewDefaultRegistry())

	got, err := conv.Exchange(context.Background(), domain.NewMoney(11235813, usd), domain.Code("CAD"))
	require.NoError(t, err)
	require.Equal(t, int64(26291802), got.Cents)
	require.Equal(t, cad, got.Currency)
}

func TestConverter_Exchange_DifferentSubunits(t *testing.T) {
	store := newStoreWithRate(t, jpy, aud, "0.0123")
	conv := NewConverter(store, currency.NewDefaultRegistry())

	got, err := conv.Exchange(context.Background(), domain.NewMoney(1000, jpy), domain.Code("aud"))
	require.NoError(t, err)
	require.Equal(t, domain.NewMoney(1230, aud), got)
}

func TestConverter_Exchange_ThroughFallback(t *testing.T) {
	kv := memory.NewHashStore()
	store := rate.NewStore(kv, currency.NewDefaultRegistry())
	store.SetFallback(true, func(context.Context) (domain.RateTable, error) {
		return domain.RateTable{
			"jpy_to_aud": decimal.RequireFromString("0.00123"),
			"gbp_to_aud": decimal.RequireFromString("1.75"),
		}, nil
	})
	conv := NewConverter(store, currency.NewDefaultRegistry())
	ctx := context.Background()

	got, err := conv.Exchange(ctx, domain.NewMoney(1000, jpy), domain.Code("AUD"))
	require.NoError(t, err)
	require.Equal(t, domain.NewMoney(123, aud), got)

	got, err = conv.Exchange(ctx, domain.NewMoney(1000, gbp), domain.Code("AUD"))
	require.NoError(t, err)
	require.Equal(t, domain.NewMoney(1750, aud), got)

	stored, ok, err := kv.Get(ctx, rate.DefaultKey, "jpy_to_aud")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "0.00123", stored)
}

func TestConverter_Exchange_UnknownCurrency_NoLookup(t *testing.T) {
	rates := new(MockRateSource)
	conv := NewConverter(rates, currency.NewDefaultRegistry())

	_, err := conv.Exchange(context.Background(), domain.NewMoney(100, usd), domain.Code("BBB"))
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)

	_, err = conv.Exchange(context.Background(), domain.NewMoney(100, domain.Currency{Code: "AAA"}), domain.Code("EUR"))
	require.ErrorIs(t, err, domain.ErrUnknownCurrency)

	rates.AssertNotCalled(t, "GetRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestConverter_Exchange_UnknownRate(t *testing.T) {
	store := rate.NewStore(memory.NewHashStore(), currency.NewDefaultRegistry())
	conv := NewConverter(store, currency.NewDefaultRegistry())

	_, err := conv.Exchange(context.Background(), domain.NewMoney(100, usd), domain.Code("JPY"))
	require.ErrorIs(t, err, domain.ErrUnknownRate)
	require.Contains(t, err.Error(), "USD -> JPY")
}

func TestConverter_Exchange_RateSourceError(t *testing.T) {
	rates := new(MockRateSource)
	conv := NewConverter(rates, currency.NewDefaultRegistry())
	storeErr := errors.New("connection refused")

	rates.On("GetRate", mock.Anything, usd, eur).Return(decimal.NullDecimal{}, storeErr).Once()

	_, err := conv.Exchange(context.Background(), domain.NewMoney(100, usd), domain.Code("EUR"))
	require.Equal(t, storeErr, err)
	rates.AssertExpectations(t)
}

func TestConverter_Exchange_AmountOutOfRange(t *testing.T) {
	rates := new(MockRateSource)
	conv := NewConverter(rates, currency.NewDefaultRegistry(), WithRounding(Ceil))
	rates.On("GetRate", mock.Anything, usd, jpy).Return(decimal.NewNullDecimal(decimal.RequireFromString("150")), nil)

	for _, cents := range []int64{math.MaxInt64, math.MinInt64, 7_000_000_000_000_000_000} {
		_, err := conv.Exchange(context.Background(), domain.NewMoney(cents, usd), domain.Code("JPY"))
		require.ErrorIs(t, err, domain.ErrAmountOutOfRange, cents)
	}

	// 2^53 is still exact as a float64
	rates.On("GetRate", mock.Anything, usd, eur).Return(decimal.NewNullDecimal(decimal.NewFromInt(1)), nil)
	got, err := conv.Exchange(context.Background(), domain.NewMoney(1<<53, usd), domain.Code("EUR"))
	require.NoError(t, err)
	require.Equal(t, int64(1<<53), got.Cents)
}

func TestInInt64Range(t *testing.T) {
	require.True(t, inInt64Range(0))
	require.True(t, inInt64Range(math.MinInt64))
	require.True(t, inInt64Range(9.2233720368547748e18))
	require.False(t, inInt64Range(math.Pow(2, 63)))
	require.False(t, inInt64Range(math.Inf(1)))
	require.False(t, inInt64Range(math.Inf(-1)))
	require.False(t, inInt64Range(math.NaN()))
}
