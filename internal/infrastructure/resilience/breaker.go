package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen is returned without calling the guarded function while
// the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateHalfOpen
	StateOpen
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Settings configures the circuit breaker behavior
type Settings struct {
	// Threshold is the number of consecutive failures that opens the breaker
	Threshold uint32
	// Cooldown is how long the breaker stays open before letting one probe through
	Cooldown time.Duration
	// OnStateChange is called whenever the state changes, outside the lock
	OnStateChange func(name string, from, to State)
}

// Breaker fails calls fast after a run of consecutive failures. Once the
// cooldown passes a single probe call decides whether it closes again.
type Breaker struct {
	name     string
	settings Settings
	now      func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
	probing  bool
}

// New creates a new circuit breaker with the given settings
func New(name string, settings Settings) *Breaker {
	if settings.Threshold == 0 {
		settings.Threshold = 5
	}
	if settings.Cooldown == 0 {
		settings.Cooldown = 30 * time.Second
	}
	return &Breaker{name: name, settings: settings, now: time.Now}
}

// Name returns the name of the circuit breaker
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state of the circuit breaker
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current()
}

// Do runs fn through b. Context cancellation is the caller's doing and
// does not count against the dependency.
func Do[T any](b *Breaker, fn func() (T, error)) (T, error) {
	var zero T
	if err := b.allow(); err != nil {
		return zero, err
	}

	result, err := fn()
	b.done(err)
	return result, err
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.current() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if b.probing {
			return ErrCircuitOpen
		}
		b.probing = true
	}
	return nil
}

func (b *Breaker) done(err error) {
	// A cancelled call says nothing about the backend: release the trial
	// slot and leave state and failure count as they were.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		b.mu.Lock()
		b.probing = false
		b.mu.Unlock()
		return
	}

	b.mu.Lock()
	from := b.current()
	b.probing = false

	switch {
	case err == nil:
		b.failures = 0
		b.state = StateClosed
	case from == StateHalfOpen:
		b.open()
	default:
		b.failures++
		if b.failures >= b.settings.Threshold {
			b.open()
		}
	}
	to := b.state
	b.mu.Unlock()

	if from != to && b.settings.OnStateChange != nil {
		b.settings.OnStateChange(b.name, from, to)
	}
}

// current moves an expired open breaker to half-open. Callers hold mu.
func (b *Breaker) current() State {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.settings.Cooldown {
		b.state = StateHalfOpen
	}
	return b.state
}

func (b *Breaker) open() {
	b.state = StateOpen
	b.openedAt = b.now()
	b.failures = 0
}
