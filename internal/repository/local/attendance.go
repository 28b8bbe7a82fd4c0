package local

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/kvstore"
)

type attendanceStore struct {
	store kvstore.Store
}

func NewAttendanceStore(store kvstore.Store) attendance.DailyStore {
	return &attendanceStore{store: store}
}

// LoadDay implements attendance.DailyStore. A stored value that cannot be
// decoded is logged and treated as absent so the workflow restarts clean.
func (s *attendanceStore) LoadDay(ctx context.Context, day time.Time) (*attendance.Record, error) {
	key := attendance.DayKey(day)

	data, ok, err := s.store.Load(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance record: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var rec attendance.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("discarding corrupt attendance record", "key", key, "error", err)
		return nil, nil
	}

	return &rec, nil
}

// SaveDay implements attendance.DailyStore.
func (s *attendanceStore) SaveDay(ctx context.Context, day time.Time, rec attendance.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode attendance record: %w", err)
	}

	if err := s.store.Save(attendance.DayKey(day), data); err != nil {
		return fmt.Errorf("failed to save attendance record: %w", err)
	}

	return nil
}

// ClearDay implements attendance.DailyStore.
func (s *attendanceStore) ClearDay(ctx context.Context, day time.Time) error {
	if err := s.store.Remove(attendance.DayKey(day)); err != nil {
		return fmt.Errorf("failed to clear attendance record: %w", err)
	}

	return nil
}
