package geo

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Status describes the state of position acquisition.
type Status string

const (
	StatusSearching   Status = "searching"
	StatusAcquired    Status = "acquired"
	StatusDenied      Status = "denied"
	StatusUnsupported Status = "unsupported"
)

// Message returns the user-facing status text.
func (s Status) Message() string {
	switch s {
	case StatusAcquired:
		return "Lokasi terdeteksi dan akan dicatat."
	case StatusDenied:
		return "Gagal mendapatkan lokasi. Pastikan GPS aktif."
	case StatusUnsupported:
		return "Perangkat tidak mendukung pelacakan lokasi."
	default:
		return "Mencari lokasi..."
	}
}

var (
	// ErrUnsupported is returned by a Provider whose platform cannot
	// produce positions at all.
	ErrUnsupported = errors.New("position source unsupported")

	// ErrDenied marks an update from a device that refused location
	// access.
	ErrDenied = errors.New("position access denied")
)

// Update is one message from a Provider: either a position or a failure.
type Update struct {
	Position Position
	Err      error
}

// Provider is a source of continuous position updates.
type Provider interface {
	// Watch starts the update stream. The stream stops when ctx is
	// cancelled. ErrUnsupported means positions will never arrive.
	Watch(ctx context.Context) (<-chan Update, error)
}

// staleAfter mirrors the 10s acquisition timeout of the device API: a fix
// older than this is treated as lost and the status reverts to searching.
const staleAfter = 10 * time.Second

// Watcher consumes a Provider and republishes the latest position. It is
// started once and must be stopped when its consumer is torn down; no
// state is written after Stop returns.
type Watcher struct {
	provider Provider
	now      func() time.Time

	mu     sync.Mutex
	latest Position
	status Status
	seenAt time.Time
	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(provider Provider) *Watcher {
	return &Watcher{
		provider: provider,
		now:      time.Now,
		status:   StatusSearching,
	}
}

// Start subscribes to the provider. A provider that reports ErrUnsupported
// leaves the watcher in the unsupported state; that is not a Start error.
func (w *Watcher) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	updates, err := w.provider.Watch(ctx)
	if err != nil {
		cancel()
		if errors.Is(err, ErrUnsupported) {
			w.mu.Lock()
			w.status = StatusUnsupported
			w.mu.Unlock()
			return nil
		}
		return err
	}

	done := make(chan struct{})
	w.mu.Lock()
	w.cancel = cancel
	w.done = done
	w.mu.Unlock()

	go w.consume(ctx, updates, done)
	return nil
}

func (w *Watcher) consume(ctx context.Context, updates <-chan Update, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			w.mu.Lock()
			if update.Err != nil {
				w.status = StatusDenied
			} else {
				w.latest = update.Position
				w.status = StatusAcquired
				w.seenAt = w.now()
			}
			w.mu.Unlock()
		}
	}
}

// Stop unsubscribes. Safe to call on a watcher that never started.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	w.mu.Lock()
	w.cancel, w.done = nil, nil
	w.mu.Unlock()
}

// Latest returns the most recent position and the current status. The
// position is only meaningful when the status is acquired.
func (w *Watcher) Latest() (Position, Status) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.status == StatusAcquired && w.now().Sub(w.seenAt) > staleAfter {
		return Position{}, StatusSearching
	}
	return w.latest, w.status
}

// PushProvider is a Provider fed by explicit Offer/Deny calls, used when
// the device reports its position over HTTP rather than from an in-process
// sensor.
type PushProvider struct {
	updates chan Update
}

func NewPushProvider() *PushProvider {
	return &PushProvider{updates: make(chan Update, 8)}
}

func (p *PushProvider) Watch(ctx context.Context) (<-chan Update, error) {
	return p.updates, nil
}

// Offer publishes a position. Updates are dropped rather than blocking the
// caller when the consumer lags.
func (p *PushProvider) Offer(pos Position) {
	select {
	case p.updates <- Update{Position: pos}:
	default:
	}
}

// Deny publishes an acquisition failure.
func (p *PushProvider) Deny(err error) {
	select {
	case p.updates <- Update{Err: err}:
	default:
	}
}
