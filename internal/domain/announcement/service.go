package announcement

import (
	"context"
)

// AnnouncementService defines business logic for announcement reads.
type AnnouncementService interface {
	// List returns announcements newest first. When the sheet cannot be
	// fetched a built-in sample set is returned with Fallback set.
	List(ctx context.Context) (ListAnnouncementResponse, error)

	// Latest returns the newest announcement, or nil when there is none.
	Latest(ctx context.Context) (*AnnouncementResponse, error)
}
