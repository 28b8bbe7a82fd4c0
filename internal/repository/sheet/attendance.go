package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/dateparse"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

// Column order of the published attendance sheet.
const (
	attColTimestamp = iota
	attColNama
	attColNIA
	attColLokasi
	attColWaktuDatang
)

type attendanceHistoryRepository struct {
	client *sheets.Client
	url    string
	loc    *time.Location
}

func NewAttendanceHistoryRepository(client *sheets.Client, url string, loc *time.Location) attendance.HistoryRepository {
	return &attendanceHistoryRepository{client: client, url: url, loc: loc}
}

// ListEntries implements attendance.HistoryRepository.
func (r *attendanceHistoryRepository) ListEntries(ctx context.Context) ([]attendance.Entry, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance sheet: %w", err)
	}

	entries := make([]attendance.Entry, 0, len(rows))
	for _, row := range rows {
		e := attendance.Entry{
			Name:        csvutil.Field(row, attColNama),
			MemberID:    csvutil.Field(row, attColNIA),
			Location:    csvutil.Field(row, attColLokasi),
			ClockInTime: csvutil.Field(row, attColWaktuDatang),
		}
		if e.Name == "" {
			continue
		}
		if t, ok := dateparse.ParseIn(csvutil.Field(row, attColTimestamp), r.loc); ok {
			e.Timestamp = t
		}
		entries = append(entries, e)
	}

	return entries, nil
}
