package location

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/location"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

// maxDisasterPoints bounds the map to the most recent disaster reports so
// old rows do not pile up as markers.
const maxDisasterPoints = 15

type LocationServiceImpl struct {
	disasters report.DisasterRepository
	history   attendance.HistoryRepository
	posko     geo.Position
	loc       *time.Location
	now       func() time.Time

	mu       sync.RWMutex
	snapshot location.Snapshot
}

func NewLocationService(
	disasters report.DisasterRepository,
	history attendance.HistoryRepository,
	posko geo.Position,
	loc *time.Location,
	now func() time.Time,
) *LocationServiceImpl {
	if now == nil {
		now = time.Now
	}
	return &LocationServiceImpl{
		disasters: disasters,
		history:   history,
		posko:     posko,
		loc:       loc,
		now:       now,
	}
}

// Snapshot implements location.LocationService.
func (s *LocationServiceImpl) Snapshot(ctx context.Context) (location.Snapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap.GeneratedAt.IsZero() {
		if err := s.Refresh(ctx); err != nil {
			return location.Snapshot{}, err
		}
		s.mu.RLock()
		snap = s.snapshot
		s.mu.RUnlock()
	}

	return snap, nil
}

// Refresh implements location.LocationService.
func (s *LocationServiceImpl) Refresh(ctx context.Context) error {
	now := s.now().In(s.loc)
	points := make([]location.Point, 0, maxDisasterPoints)

	reports, err := s.disasters.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh map from disaster sheet: %w", err)
	}
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
	for _, r := range reports {
		if len(points) == maxDisasterPoints {
			break
		}
		pos, ok := r.Position()
		if !ok {
			continue
		}
		reported := ""
		if !r.Timestamp.IsZero() {
			reported = r.Timestamp.In(s.loc).Format("02/01/2006 15:04")
		}
		points = append(points, location.Point{
			Kind:           location.KindDisaster,
			Name:           r.Name,
			Label:          r.DisasterType + " - " + r.Location,
			Position:       pos,
			DistanceMeters: s.distance(pos),
			MapsURL:        location.MapsURL(pos),
			ReportedAt:     reported,
		})
	}

	entries, err := s.history.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh map from attendance sheet: %w", err)
	}
	today := now.Format("2006-01-02")
	for _, e := range entries {
		if e.Timestamp.IsZero() || e.Timestamp.In(s.loc).Format("2006-01-02") != today {
			continue
		}
		pos, ok := report.ParseCoordinates(e.Location)
		if !ok {
			continue
		}
		points = append(points, location.Point{
			Kind:           location.KindAttendance,
			Name:           e.Name,
			Label:          "Piket " + e.ClockInTime,
			Position:       pos,
			DistanceMeters: s.distance(pos),
			MapsURL:        location.MapsURL(pos),
			ReportedAt:     e.Timestamp.In(s.loc).Format("02/01/2006 15:04"),
		})
	}

	s.mu.Lock()
	s.snapshot = location.Snapshot{
		GeneratedAt: now,
		Posko:       s.posko,
		Points:      points,
	}
	s.mu.Unlock()

	return nil
}

func (s *LocationServiceImpl) distance(pos geo.Position) float64 {
	return geo.Haversine(s.posko.Latitude, s.posko.Longitude, pos.Latitude, pos.Longitude)
}
