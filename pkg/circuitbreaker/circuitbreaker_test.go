package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroker = errors.New("broker unavailable")

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newBreaker(cfg Config) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	cb := NewCircuitBreaker("test", cfg)
	cb.now = clock.now
	cb.resetWindow(clock.now())
	return cb, clock
}

func fail() error    { return errBroker }
func succeed() error { return nil }

func TestClosedStatePassesRequests(t *testing.T) {
	cb, _ := newBreaker(Config{Timeout: time.Second})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(succeed))
	}
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(10), cb.Counts().TotalSuccesses)
}

func TestTripsAfterConsecutiveFailures(t *testing.T) {
	cb, _ := newBreaker(Config{Timeout: time.Second})

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, cb.Execute(fail), errBroker)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, called, "OPEN状态不应执行请求")
}

func TestHalfOpenRecovery(t *testing.T) {
	t.Run("探测成功后关闭", func(t *testing.T) {
		cb, clock := newBreaker(Config{Timeout: 10 * time.Second, ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 2 }})
		_ = cb.Execute(fail)
		_ = cb.Execute(fail)
		require.Equal(t, StateOpen, cb.State())

		clock.advance(11 * time.Second)
		assert.Equal(t, StateHalfOpen, cb.State())

		require.NoError(t, cb.Execute(succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("探测失败重新打开", func(t *testing.T) {
		cb, clock := newBreaker(Config{Timeout: 10 * time.Second, ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 }})
		_ = cb.Execute(fail)
		clock.advance(11 * time.Second)
		require.Equal(t, StateHalfOpen, cb.State())

		_ = cb.Execute(fail)
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestIntervalResetsCounts(t *testing.T) {
	cb, clock := newBreaker(Config{Interval: time.Minute, Timeout: time.Second})
	for i := 0; i < 4; i++ {
		_ = cb.Execute(fail)
	}
	clock.advance(2 * time.Minute)

	_ = cb.Execute(fail)
	assert.Equal(t, StateClosed, cb.State(), "窗口过期后连续失败计数应清零")
	assert.Equal(t, uint32(1), cb.Counts().ConsecutiveFailures)
}

func TestStateChangeCallback(t *testing.T) {
	cb, clock := newBreaker(Config{Timeout: time.Second, ReadyToTrip: func(c Counts) bool { return c.ConsecutiveFailures >= 1 }})

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	_ = cb.Execute(fail)
	clock.advance(2 * time.Second)
	_ = cb.Execute(succeed)

	assert.Equal(t, []string{"CLOSED->OPEN", "OPEN->HALF_OPEN", "HALF_OPEN->CLOSED"}, transitions)
}

func TestFailureRate(t *testing.T) {
	assert.Equal(t, 0.0, Counts{}.FailureRate())
	assert.Equal(t, 0.25, Counts{Requests: 4, TotalFailures: 1}.FailureRate())
}
