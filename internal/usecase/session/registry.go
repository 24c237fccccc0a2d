package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-console/internal/pkg/clock"
	"hotel-console/internal/pkg/config"
	"hotel-console/internal/pkg/errs"

	"github.com/google/uuid"
)

// Registry keeps one Console per browser session, in memory only.
type Registry struct {
	mu       sync.Mutex
	consoles map[string]*Console
	factory  *Factory
	clock    clock.Clock
	idle     time.Duration
	interval time.Duration
	logger   *slog.Logger

	stop chan struct{}
	done chan struct{}
}

func NewRegistry(cfg config.SessionConfig, f *Factory, clk clock.Clock, logger *slog.Logger) *Registry {
	return &Registry{
		consoles: map[string]*Console{},
		factory:  f,
		clock:    clk,
		idle:     cfg.IdleTimeout,
		interval: cfg.SweepInterval,
		logger:   logger,
	}
}

// Acquire returns the console of id, creating a session when id is unknown or
// malformed. created reports whether the caller must hand out a new id.
func (r *Registry) Acquire(id string) (c *Console, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if c, ok := r.consoles[id]; ok {
		c.lastSeen = now
		return c, false
	}

	newID := uuid.NewString()
	c = r.factory.New(newID, now)
	r.consoles[newID] = c
	return c, true
}

func (r *Registry) Drop(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.consoles, id)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// Sweep drops sessions idle for longer than the configured timeout.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, c := range r.consoles {
		if r.clock.Since(c.lastSeen) > r.idle {
			delete(r.consoles, id)
			dropped++
		}
	}
	return dropped
}

// Start runs Sweep on a ticker until Stop.
func (r *Registry) Start(_ context.Context) error {
	if r.interval <= 0 {
		return errs.Newf("session sweep interval must be positive, got %s", r.interval)
	}
	r.stop = make(chan struct{})
	r.done = make(chan struct{})
	go func() {
		defer close(r.done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := r.Sweep(); n > 0 {
					r.logger.Debug("Expired console sessions", slog.Int("count", n))
				}
			case <-r.stop:
				return
			}
		}
	}()
	return nil
}

func (r *Registry) Stop(ctx context.Context) error {
	if r.stop == nil {
		return nil
	}
	close(r.stop)
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
