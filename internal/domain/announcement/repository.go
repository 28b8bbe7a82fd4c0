package announcement

import (
	"context"
)

// AnnouncementRepository reads announcement rows from the published sheet.
type AnnouncementRepository interface {
	// List returns every announcement in sheet order.
	List(ctx context.Context) ([]Announcement, error)
}
