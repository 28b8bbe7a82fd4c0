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

// Column order of the published disaster-report sheet. The coordinate
// column sits at index 8, after the free-text columns.
const (
	disColTimestamp = iota
	disColNama
	disColNIA
	disColJenis
	disColWaktu
	disColLokasi
	disColKorban
	disColKeterangan
	disColKoordinat
)

type disasterRepository struct {
	client *sheets.Client
	url    string
	loc    *time.Location
}

func NewDisasterRepository(client *sheets.Client, url string, loc *time.Location) report.DisasterRepository {
	return &disasterRepository{client: client, url: url, loc: loc}
}

// List implements report.DisasterRepository.
func (r *disasterRepository) List(ctx context.Context) ([]report.DisasterReport, error) {
	rows, err := r.client.Fetch(ctx, r.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch disaster sheet: %w", err)
	}

	reports := make([]report.DisasterReport, 0, len(rows))
	for _, row := range rows {
		rep := report.DisasterReport{
			Name:         csvutil.Field(row, disColNama),
			MemberID:     csvutil.Field(row, disColNIA),
			DisasterType: csvutil.Field(row, disColJenis),
			OccurredAt:   csvutil.Field(row, disColWaktu),
			Location:     csvutil.Field(row, disColLokasi),
			Victims:      csvutil.Field(row, disColKorban),
			Description:  csvutil.Field(row, disColKeterangan),
			Coordinates:  csvutil.Field(row, disColKoordinat),
		}
		if rep.Name == "" && rep.DisasterType == "" {
			continue
		}
		if t, ok := dateparse.ParseIn(csvutil.Field(row, disColTimestamp), r.loc); ok {
			rep.Timestamp = t
		}
		reports = append(reports, rep)
	}

	return reports, nil
}
