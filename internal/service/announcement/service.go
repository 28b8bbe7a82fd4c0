package announcement

import (
	"context"
	"log/slog"
	"sort"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/announcement"
)

type AnnouncementServiceImpl struct {
	repo announcement.AnnouncementRepository
}

func NewAnnouncementService(repo announcement.AnnouncementRepository) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{repo: repo}
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context) (announcement.ListAnnouncementResponse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		slog.Warn("announcement sheet unavailable, serving sample data", "error", err)
		return announcement.ListAnnouncementResponse{
			Announcements: sampleAnnouncements(),
			Fallback:      true,
		}, nil
	}

	// Newest first; rows without a readable date sink to the bottom in
	// sheet order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	resp := announcement.ListAnnouncementResponse{
		Announcements: make([]announcement.AnnouncementResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Announcements = append(resp.Announcements, toResponse(item))
	}

	return resp, nil
}

// Latest implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Latest(ctx context.Context) (*announcement.AnnouncementResponse, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(list.Announcements) == 0 {
		return nil, nil
	}
	latest := list.Announcements[0]
	return &latest, nil
}

func toResponse(item announcement.Announcement) announcement.AnnouncementResponse {
	date := item.RawDate
	if !item.Date.IsZero() {
		date = item.Date.Format("02/01/2006")
	}
	return announcement.AnnouncementResponse{
		Date:     date,
		Title:    item.Title,
		Body:     item.Body,
		Category: item.Category,
	}
}
