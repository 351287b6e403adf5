// Package dining implements group dining sessions: rounds of orders, shared
// lines split between participants, the confirmation protocol that advances
// rounds and settles checkout, the group dish catalog and the per-user
// restaurant menu cache.
//
// Every Engine operation runs as a single store transaction and either
// commits entirely or leaves no trace.
package dining

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/mmynk/tableround/internal/metrics"
	"github.com/mmynk/tableround/internal/storage"
)

// MaxTemplateLinks bounds how many restaurant menus a user keeps.
const MaxTemplateLinks = 2

// Engine executes dining operations against a store.
type Engine struct {
	store   storage.Store
	now     func() time.Time
	groupID func() string
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces time.Now as the engine's source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithGroupIDs replaces the generator of new group ids.
func WithGroupIDs(next func() string) Option {
	return func(e *Engine) { e.groupID = next }
}

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// New creates an Engine backed by store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{store: store, now: time.Now, groupID: newGroupID, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) unix() int64 { return e.now().Unix() }

// effects collects what a transaction did. They are reported only once the
// transaction has committed.
type effects struct {
	closed  []closedRound
	locks   []lockEvent
	settled string
	evicted []string
	swept   int
}

type closedRound struct {
	id      string
	trigger string
}

type lockEvent struct {
	itemID string
	forced bool
}

// run executes fn in a transaction and records its effects after commit.
func (e *Engine) run(ctx context.Context, fn func(q storage.Queries, fx *effects) error) error {
	fx := &effects{}
	err := e.store.InTx(ctx, func(q storage.Queries) error {
		return fn(q, fx)
	})
	if err != nil {
		return translate(err)
	}
	e.record(fx)
	return nil
}

func (e *Engine) record(fx *effects) {
	for _, l := range fx.locks {
		metrics.SharedLinesLocked.WithLabelValues(strconv.FormatBool(l.forced)).Inc()
		e.logger.Debug("Shared line locked", "item_id", l.itemID, "forced", l.forced)
	}
	for _, r := range fx.closed {
		metrics.RoundsClosed.WithLabelValues(r.trigger).Inc()
		e.logger.Info("Round closed", "round_id", r.id, "trigger", r.trigger)
	}
	if fx.settled != "" {
		metrics.CheckoutsSettled.Inc()
		e.logger.Info("Checkout settled", "group_id", fx.settled)
	}
	for _, id := range fx.evicted {
		metrics.TemplatesEvicted.Inc()
		e.logger.Info("Template link evicted", "menu_id", id)
	}
	if fx.swept > 0 {
		metrics.TemplatesSwept.Add(float64(fx.swept))
		e.logger.Info("Restaurant menus swept", "count", fx.swept)
	}
}
