package location

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/location"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

var wib = time.FixedZone("WIB", 7*3600)

var posko = geo.Position{Latitude: -6.1149, Longitude: 106.1502}

type disasterStub struct {
	reports []report.DisasterReport
}

func (d *disasterStub) List(ctx context.Context) ([]report.DisasterReport, error) {
	return d.reports, nil
}

type historyStub struct {
	entries []attendance.Entry
}

func (h *historyStub) ListEntries(ctx context.Context) ([]attendance.Entry, error) {
	return h.entries, nil
}

func TestRefreshLimitsDisasterPoints(t *testing.T) {
	var reports []report.DisasterReport
	for i := 0; i < 20; i++ {
		reports = append(reports, report.DisasterReport{
			Timestamp:    time.Date(2024, 7, 1+i, 12, 0, 0, 0, wib),
			Name:         fmt.Sprintf("Pelapor %d", i),
			DisasterType: "Banjir",
			Location:     "Serang",
			Coordinates:  "-6.1149, 106.1502",
		})
	}
	// Rows without usable coordinates never become markers.
	reports = append(reports, report.DisasterReport{
		Timestamp:    time.Date(2024, 7, 30, 12, 0, 0, 0, wib),
		Name:         "Tanpa Koordinat",
		DisasterType: "Longsor",
		Coordinates:  "Lokasi tidak dapat diakses",
	})

	svc := NewLocationService(&disasterStub{reports: reports}, &historyStub{}, posko, wib, func() time.Time {
		return time.Date(2024, 7, 25, 16, 0, 0, 0, wib)
	})

	require.NoError(t, svc.Refresh(context.Background()))
	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Len(t, snap.Points, 15)
	// Newest report first.
	assert.Equal(t, "Pelapor 19", snap.Points[0].Name)
	assert.InDelta(t, 0, snap.Points[0].DistanceMeters, 0.5)
	assert.Equal(t, posko, snap.Posko)
}

func TestRefreshIncludesTodayAttendance(t *testing.T) {
	now := time.Date(2024, 7, 25, 16, 30, 0, 0, wib)
	entries := []attendance.Entry{
		{
			Timestamp:   time.Date(2024, 7, 25, 16, 5, 0, 0, wib),
			Name:        "Budi Santoso",
			Location:    "-6.1200, 106.1550",
			ClockInTime: "16:05:00",
		},
		{
			// Yesterday, skipped.
			Timestamp:   time.Date(2024, 7, 24, 16, 5, 0, 0, wib),
			Name:        "Siti Aminah",
			Location:    "-6.1200, 106.1550",
			ClockInTime: "16:05:00",
		},
		{
			// Today but without a fix, skipped.
			Timestamp:   time.Date(2024, 7, 25, 16, 10, 0, 0, wib),
			Name:        "Agus Supriatna",
			Location:    "Lokasi tidak dapat diakses",
			ClockInTime: "16:10:00",
		},
	}

	svc := NewLocationService(&disasterStub{}, &historyStub{entries: entries}, posko, wib, func() time.Time {
		return now
	})

	require.NoError(t, svc.Refresh(context.Background()))
	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Points, 1)
	p := snap.Points[0]
	assert.Equal(t, location.KindAttendance, p.Kind)
	assert.Equal(t, "Budi Santoso", p.Name)
	assert.Greater(t, p.DistanceMeters, 100.0)
}

func TestSnapshotRefreshesLazily(t *testing.T) {
	svc := NewLocationService(&disasterStub{}, &historyStub{}, posko, wib, nil)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.GeneratedAt.IsZero())
	assert.Empty(t, snap.Points)
}
