//go:build unit

package session_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/usecase/form"
	"hotel-console/internal/usecase/notify"
	"hotel-console/internal/usecase/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(clk clock.Clock, idle time.Duration) *session.Registry {
	factory := session.NewFactory(session.Gateways{},
		notify.NewNotifier(config.NotifyConfig{}, clk), form.NewValidator())
	return session.NewRegistry(
		config.SessionConfig{IdleTimeout: idle, SweepInterval: time.Millisecond},
		factory, clk, slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestRegistry_Acquire(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	reg := newRegistry(clk, 30*time.Minute)

	t.Run("unknown id opens a new session under a fresh id", func(t *testing.T) {
		c, created := reg.Acquire("forged-id")

		require.True(t, created)
		assert.NotEqual(t, "forged-id", c.ID)
		assert.NotNil(t, c.Guests)
		assert.NotNil(t, c.Rooms)
		assert.NotNil(t, c.Accounts)
		assert.NotNil(t, c.Reservations)
	})

	t.Run("known id returns the same console", func(t *testing.T) {
		first, _ := reg.Acquire("")
		again, created := reg.Acquire(first.ID)

		assert.False(t, created)
		assert.Same(t, first, again)
	})

	t.Run("sessions are independent", func(t *testing.T) {
		a, _ := reg.Acquire("")
		b, _ := reg.Acquire("")

		assert.NotEqual(t, a.ID, b.ID)
		assert.NotSame(t, a.Guests, b.Guests)
	})

	t.Run("drop", func(t *testing.T) {
		c, _ := reg.Acquire("")
		before := reg.Len()
		reg.Drop(c.ID)

		assert.Equal(t, before-1, reg.Len())
		_, created := reg.Acquire(c.ID)
		assert.True(t, created)
	})
}

func TestRegistry_Sweep(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	reg := newRegistry(clk, 30*time.Minute)

	idle, _ := reg.Acquire("")
	active, _ := reg.Acquire("")

	clk.Add(20 * time.Minute)
	reg.Acquire(active.ID)
	clk.Add(15 * time.Minute)

	assert.Equal(t, 1, reg.Sweep())
	assert.Equal(t, 1, reg.Len())

	_, created := reg.Acquire(active.ID)
	assert.False(t, created)
	_, created = reg.Acquire(idle.ID)
	assert.True(t, created)
}

func TestRegistry_StartStop(t *testing.T) {
	reg := newRegistry(clock.NewRealClock(), time.Hour)

	require.NoError(t, reg.Start(context.Background()))
	reg.Acquire("")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, reg.Stop(ctx))
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_StopWithoutStart(t *testing.T) {
	reg := newRegistry(clock.NewRealClock(), time.Hour)
	assert.NoError(t, reg.Stop(context.Background()))
}

func TestRegistry_StartRejectsNonPositiveInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		reg := session.NewRegistry(
			config.SessionConfig{IdleTimeout: time.Hour, SweepInterval: interval},
			nil, clock.NewRealClock(), slog.New(slog.NewTextHandler(io.Discard, nil)),
		)

		assert.Error(t, reg.Start(context.Background()), "interval %s", interval)
		assert.NoError(t, reg.Stop(context.Background()))
	}
}
