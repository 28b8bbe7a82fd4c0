package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/csvutil"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/dateparse"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

// Column order of the published activity-report sheet.
const (
	actColTimestamp = iota
	actColNama
	actColNIA
	actColKegiatan
	actColTempat
	actColWaktu
)

type activityRepository struct {
	client *sheets.Client
	url    string
	loc    *time.Location
}

func NewActivityRepository(client *sheets.Client, url string, loc *time.Location) report.ActivityRepository {
	return &activityRepository{client: client, url: url, loc: loc}
}

// List implements report.ActivityRepository.
func (r *activityRepository) List(ctx context.Context) ([]report.ActivityReport, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity sheet: %w", err)
	}

	reports := make([]report.ActivityReport, 0, len(rows))
	for _, row := range rows {
		rep := report.ActivityReport{
			Name:       csvutil.Field(row, actColNama),
			MemberID:   csvutil.Field(row, actColNIA),
			Activity:   csvutil.Field(row, actColKegiatan),
			Place:      csvutil.Field(row, actColTempat),
			OccurredAt: csvutil.Field(row, actColWaktu),
		}
		if rep.Name == "" && rep.Activity == "" {
			continue
		}
		if t, ok := dateparse.ParseIn(csvutil.Field(row, actColTimestamp), r.loc); ok {
			rep.Timestamp = t
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
