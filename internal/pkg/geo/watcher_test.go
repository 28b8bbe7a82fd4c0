package geo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func waitForStatus(t *testing.T, w *Watcher, want Status) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, status := w.Latest(); status == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	_, status := w.Latest()
	t.Fatalf("status = %q, want %q", status, want)
}

func TestWatcherAcquiresAndStops(t *testing.T) {
	provider := NewPushProvider()
	watcher := NewWatcher(provider)

	if _, status := watcher.Latest(); status != StatusSearching {
		t.Fatalf("initial status = %q, want searching", status)
	}

	if err := watcher.Start(context.Background()); err != nil {
		t.Fatal(err)
	}

	provider.Offer(Position{Latitude: -6.11, Longitude: 106.15})
	waitForStatus(t, watcher, StatusAcquired)

	pos, _ := watcher.Latest()
	if pos.Latitude != -6.11 || pos.Longitude != 106.15 {
		t.Errorf("latest = %+v, want -6.11, 106.15", pos)
	}

	watcher.Stop()

	// No state writes after teardown.
	provider.Offer(Position{Latitude: 1, Longitude: 1})
	time.Sleep(20 * time.Millisecond)
	pos, _ = watcher.Latest()
	if pos.Latitude != -6.11 {
		t.Errorf("position changed after Stop: %+v", pos)
	}
}

func TestWatcherImmediateStop(t *testing.T) {
	// Stop racing the consumer goroutine's startup must neither panic
	// nor hang, including when called again afterwards.
	for i := 0; i < 100; i++ {
		provider := NewPushProvider()
		watcher := NewWatcher(provider)
		if err := watcher.Start(context.Background()); err != nil {
			t.Fatal(err)
		}
		watcher.Stop()
		watcher.Stop()
	}
}

func TestWatcherRestart(t *testing.T) {
	provider := NewPushProvider()
	watcher := NewWatcher(provider)

	if err := watcher.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	watcher.Stop()

	if err := watcher.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer watcher.Stop()

	provider.Offer(Position{Latitude: -6.11, Longitude: 106.15})
	waitForStatus(t, watcher, StatusAcquired)
}

func TestWatcherDenied(t *testing.T) {
	provider := NewPushProvider()
	watcher := NewWatcher(provider)
	if err := watcher.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer watcher.Stop()

	provider.Deny(errors.New("permission denied"))
	waitForStatus(t, watcher, StatusDenied)
}

type unsupportedProvider struct{}

func (unsupportedProvider) Watch(ctx context.Context) (<-chan Update, error) {
	return nil, ErrUnsupported
}

func TestWatcherUnsupported(t *testing.T) {
	watcher := NewWatcher(unsupportedProvider{})
	if err := watcher.Start(context.Background()); err != nil {
		t.Fatalf("Start = %v, want nil for unsupported provider", err)
	}
	if _, status := watcher.Latest(); status != StatusUnsupported {
		t.Errorf("status = %q, want unsupported", status)
	}
	watcher.Stop()
}

func TestWatcherStaleFixRevertsToSearching(t *testing.T) {
	provider := NewPushProvider()
	watcher := NewWatcher(provider)
	current := time.Now()
	watcher.now = func() time.Time { return current }

	if err := watcher.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer watcher.Stop()

	provider.Offer(Position{Latitude: 2})
	waitForStatus(t, watcher, StatusAcquired)

	current = current.Add(staleAfter + time.Second)
	if _, status := watcher.Latest(); status != StatusSearching {
		t.Errorf("status after staleness window = %q, want searching", status)
	}
}

func TestHaversine(t *testing.T) {
	// Jakarta (Monas) to Bandung (Gedung Sate), roughly 116 km.
	d := Haversine(-6.1754, 106.8272, -6.9025, 107.6186)
	if d < 110000 || d > 125000 {
		t.Errorf("Haversine = %f m, want roughly 116 km", d)
	}
	if d := Haversine(1, 1, 1, 1); d != 0 {
		t.Errorf("zero distance = %f, want 0", d)
	}
}
