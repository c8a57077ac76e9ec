// Package timer implements the study session stopwatch.
//
// Elapsed time is always derived from wall-clock deltas read through an
// injected clock, never from counting display ticks, so a suspended or
// throttled display loop cannot make the timer drift.
package timer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/studytrack-backend/internal/domain"
)

// ErrInvalidTransition is returned when an operation is not allowed in the
// timer's current state.
var ErrInvalidTransition = errors.New("timer: invalid state transition")

// DiscardThreshold is the session length below which a stop should be
// confirmed by the user before the result is saved.
const DiscardThreshold = 60 * time.Second

// State is the lifecycle state of a Timer.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Snapshot is a point-in-time view of a Timer.
type Snapshot struct {
	State          State
	Subject        string
	Category       string
	IsActive       bool
	StartedAt      *time.Time
	DisplaySeconds int
}

// Result is what a stopped session produced.
type Result struct {
	Title           string
	Category        string
	DurationMinutes int
	RawSeconds      int
}

// NeedsDiscardConfirmation reports whether the session is short enough that
// the caller should ask before saving it.
func (r Result) NeedsDiscardConfirmation() bool {
	return time.Duration(r.RawSeconds)*time.Second < DiscardThreshold
}

// Timer is a start/pause/resume/stop stopwatch for one study session.
// It is safe for concurrent use.
type Timer struct {
	clock clockwork.Clock

	mu          sync.Mutex
	state       State
	subject     string
	category    string
	startedAt   time.Time
	accumulated time.Duration
}

// New creates an idle Timer. A nil clock means the real wall clock.
func New(clock clockwork.Clock) *Timer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Timer{
		clock:    clock,
		category: domain.DefaultCategory,
	}
}

// Start begins a new session. The subject is required; a blank category
// becomes the default category.
func (t *Timer) Start(subject, category string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return domain.NewValidationError("subject", "required")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Idle {
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, t.state)
	}

	t.state = Running
	t.subject = subject
	t.category = domain.NormalizeCategory(category)
	t.startedAt = t.clock.Now()
	t.accumulated = 0
	return nil
}

// Pause folds the running interval into the accumulated total.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Running {
		return fmt.Errorf("%w: pause while %s", ErrInvalidTransition, t.state)
	}

	t.accumulated += t.sinceStartLocked()
	t.startedAt = time.Time{}
	t.state = Paused
	return nil
}

// Resume starts a new running interval after a pause.
func (t *Timer) Resume() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != Paused {
		return fmt.Errorf("%w: resume while %s", ErrInvalidTransition, t.state)
	}

	t.startedAt = t.clock.Now()
	t.state = Running
	return nil
}

// Stop ends the session and returns its result. The timer is idle afterwards.
// Short sessions are not rejected here; see Result.NeedsDiscardConfirmation.
func (t *Timer) Stop() (Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == Idle {
		return Result{}, fmt.Errorf("%w: stop while %s", ErrInvalidTransition, t.state)
	}

	raw := t.elapsedLocked()
	res := Result{
		Title:           t.subject,
		Category:        t.category,
		RawSeconds:      raw,
		DurationMinutes: RoundMinutes(raw),
	}
	t.resetLocked()
	return res, nil
}

// Reset discards the current session from any state.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resetLocked()
}

// Elapsed returns the whole seconds shown on the display right now.
func (t *Timer) Elapsed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsedLocked()
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Snapshot returns the current view of the timer.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := Snapshot{
		State:          t.state,
		Subject:        t.subject,
		Category:       t.category,
		IsActive:       t.state == Running,
		DisplaySeconds: t.elapsedLocked(),
	}
	if t.state == Running {
		started := t.startedAt
		s.StartedAt = &started
	}
	return s
}

// Watch calls fn with a fresh snapshot immediately and then on every tick of
// interval until ctx is done. Each snapshot is recomputed from the clock, so
// missed ticks never lose time. Watch blocks; run it in its own goroutine.
func (t *Timer) Watch(ctx context.Context, interval time.Duration, fn func(Snapshot)) error {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := t.clock.NewTicker(interval)
	defer ticker.Stop()

	fn(t.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.Chan():
			fn(t.Snapshot())
		}
	}
}

// RoundMinutes converts raw seconds to whole minutes, rounding half up:
// 89s is 1 minute, 90s is 2 minutes.
func RoundMinutes(rawSeconds int) int {
	if rawSeconds <= 0 {
		return 0
	}
	return (rawSeconds + 30) / 60
}

func (t *Timer) sinceStartLocked() time.Duration {
	d := t.clock.Since(t.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (t *Timer) elapsedLocked() int {
	total := t.accumulated
	if t.state == Running {
		total += t.sinceStartLocked()
	}
	return int(total / time.Second)
}

func (t *Timer) resetLocked() {
	t.state = Idle
	t.subject = ""
	t.category = domain.DefaultCategory
	t.startedAt = time.Time{}
	t.accumulated = 0
}
