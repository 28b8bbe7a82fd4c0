package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/announcement"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/dateparse"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

// Column order of the published announcement sheet.
const (
	annColTanggal = iota
	annColJudul
	annColIsi
	annColKategori
)

type announcementRepository struct {
	client *sheets.Client
	url    string
	loc    *time.Location
}

func NewAnnouncementRepository(client *sheets.Client, url string, loc *time.Location) announcement.AnnouncementRepository {
	return &announcementRepository{client: client, url: url, loc: loc}
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcement sheet: %w", err)
	}

	items := make([]announcement.Announcement, 0, len(rows))
	for _, row := range rows {
		raw := csvutil.Field(row, annColTanggal)
		item := announcement.Announcement{
			RawDate:  raw,
			Title:    csvutil.Field(row, annColJudul),
			Body:     csvutil.Field(row, annColIsi),
			Category: csvutil.Field(row, annColKategori),
		}
		if item.Title == "" && item.Body == "" {
			continue
		}
		if t, ok := dateparse.ParseIn(raw, r.loc); ok {
			item.Date = t
		}
		items = append(items, item)
	}

	return items, nil
}
