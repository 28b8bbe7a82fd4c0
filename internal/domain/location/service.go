package location

import "context"

// LocationService serves the posko map.
type LocationService interface {
	// Snapshot returns the last assembled map state. The zero snapshot is
	// returned before the first refresh completes.
	Snapshot(ctx context.Context) (Snapshot, error)

	// Refresh rebuilds the snapshot from the published sheets. Called by
	// the background scheduler and exposed for a manual refresh.
	Refresh(ctx context.Context) error
}
