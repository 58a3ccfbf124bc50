package app

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"dominoes/internal/domain"
)

var ErrTableClosed = errors.New("table closed")

// Timer is the part of *time.Timer the table needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc satisfies it once wrapped.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// TableOption configures a Table.
type TableOption func(*Table)

// WithBotDelay sets the bounds of the pause before a bot acts.
func WithBotDelay(lo, hi time.Duration) TableOption {
	return func(t *Table) {
		if lo < 0 || hi < lo {
			return
		}
		t.minDelay, t.maxDelay = lo, hi
	}
}

// WithAfterFunc replaces the scheduler, mostly for tests.
func WithAfterFunc(fn AfterFunc) TableOption {
	return func(t *Table) {
		if fn != nil {
			t.after = fn
		}
	}
}

// WithDelayRand sets the source used to pick bot delays.
func WithDelayRand(rng *rand.Rand) TableOption {
	return func(t *Table) {
		if rng != nil {
			t.delayRng = rng
		}
	}
}

// WithEventSink receives the events produced by scheduled bot turns.
func WithEventSink(sink func([]Event)) TableOption {
	return func(t *Table) {
		t.sink = sink
	}
}

// Table wraps a Service for embedders that play in real time. Bot turns are
// not applied inline: each one is scheduled after a randomized pause and can
// be cancelled by a new game, a new round or Close.
type Table struct {
	mu  sync.Mutex
	svc *Service

	after    AfterFunc
	delayRng *rand.Rand
	minDelay time.Duration
	maxDelay time.Duration
	sink     func([]Event)

	pending    Timer
	generation uint64
	closed     bool
}

// NewTable builds a Table around svc.
func NewTable(svc *Service, opts ...TableOption) *Table {
	t := &Table{
		svc:      svc,
		after:    realAfterFunc,
		delayRng: rand.New(rand.NewSource(time.Now().UnixNano())),
		minDelay: DefaultBotMinDelay,
		maxDelay: DefaultBotMaxDelay,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current snapshot.
func (t *Table) State() domain.GameState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.svc.State()
}

// BotScheduled reports whether a bot turn is waiting on its timer.
func (t *Table) BotScheduled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Table) NewGame(rule domain.RuleType, aiEnabled bool, players int) ([]Event, error) {
	return t.do(true, func() ([]Event, error) {
		return t.svc.NewGame(rule, aiEnabled, players)
	})
}

func (t *Table) NewRound() ([]Event, error) {
	return t.do(true, t.svc.NewRound)
}

func (t *Table) PlaceTile(seat, index int, side domain.Side) ([]Event, error) {
	return t.do(false, func() ([]Event, error) {
		return t.svc.PlaceTile(seat, index, side)
	})
}

func (t *Table) DrawTile(seat int) ([]Event, error) {
	return t.do(false, func() ([]Event, error) {
		return t.svc.DrawTile(seat)
	})
}

func (t *Table) PassTurn(seat int) ([]Event, error) {
	return t.do(false, func() ([]Event, error) {
		return t.svc.PassTurn(seat)
	})
}

// Close cancels any pending bot turn. Later calls return ErrTableClosed.
func (t *Table) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.cancelLocked()
}

func (t *Table) do(reset bool, fn func() ([]Event, error)) ([]Event, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil, ErrTableClosed
	}
	events, err := fn()
	if err != nil {
		return nil, err
	}
	if reset {
		t.cancelLocked()
	}
	t.scheduleLocked()
	return events, nil
}

func (t *Table) cancelLocked() {
	t.generation++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Table) scheduleLocked() {
	if t.pending != nil || !t.svc.BotPending() {
		return
	}
	gen := t.generation
	t.pending = t.after(t.botDelay(), func() { t.fire(gen) })
}

func (t *Table) botDelay() time.Duration {
	span := int64(t.maxDelay - t.minDelay)
	if span <= 0 {
		return t.minDelay
	}
	return t.minDelay + time.Duration(t.delayRng.Int63n(span+1))
}

// fire runs a scheduled bot turn unless it was superseded.
func (t *Table) fire(gen uint64) {
	t.mu.Lock()
	if t.closed || gen != t.generation {
		t.mu.Unlock()
		return
	}
	t.pending = nil
	events, err := t.svc.PlayBotTurn()
	if err == nil {
		t.scheduleLocked()
	}
	sink := t.sink
	logger := t.svc.logger
	t.mu.Unlock()

	if err != nil {
		logger.Error("bot turn failed: %v", err)
		return
	}
	if sink != nil {
		sink(events)
	}
}
