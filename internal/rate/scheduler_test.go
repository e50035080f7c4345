package rate

import (
	"context"
	"testing"
	"time"

	"ratebank/internal/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	table, _ := args.Get(0).(domain.RateTable)
	return table, args.Error(1)
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, 10*time.Second)
	require.NotNil(t, s)
	require.False(t, s.running())
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, 10*time.Second)
	require.NoError(t, s.Shutdown())
	require.False(t, s.running())
}

func TestScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	cancel()

	require.Eventually(t, func() bool { return !s.running() }, 2*time.Second, 10*time.Millisecond,
		"expected scheduler to be shutdown after ctx cancel")
}

func TestScheduler_RunsRefresh(t *testing.T) {
	store := new(MockRefresher)
	refreshed := make(chan struct{}, 1)
	store.On("Refresh", mock.Anything).
		Return(domain.RateTable{}, nil).
		Run(func(mock.Arguments) {
			select {
			case refreshed <- struct{}{}:
			default:
			}
		})

	s := NewScheduler(store, nil, nil, 50*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	t.Cleanup(func() { _ = s.Shutdown() })

	select {
	case <-refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job did not run")
	}
}

func TestScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.True(t, s.running())

	require.NoError(t, s.Shutdown())
	require.False(t, s.running())

	require.NoError(t, s.Shutdown())
}

func TestNewScheduler_UsesProvidedInterval(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, 42*time.Second)
	require.Equal(t, 42*time.Second, s.refreshInterval)
}

func TestNewScheduler_DefaultsIntervalWhenInvalid(t *testing.T) {
	s := NewScheduler(new(MockRefresher), nil, nil, 0)
	require.Equal(t, defaultRefreshInterval, s.refreshInterval)
}
