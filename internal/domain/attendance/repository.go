package attendance

import (
	"context"
	"time"
)

// DailyStore persists the single attendance record of each day.
type DailyStore interface {
	// LoadDay returns the record for the given day, or nil when no record
	// exists. A record that cannot be decoded is treated as absent.
	LoadDay(ctx context.Context, day time.Time) (*Record, error)

	// SaveDay writes the record for the given day.
	SaveDay(ctx context.Context, day time.Time, rec Record) error

	// ClearDay removes the record for the given day. Clearing a day that
	// has no record is not an error.
	ClearDay(ctx context.Context, day time.Time) error
}

// HistoryRepository reads submitted attendance rows from the published
// sheet, used by the recap export and the location map.
type HistoryRepository interface {
	// ListEntries returns every attendance row in sheet order.
	ListEntries(ctx context.Context) ([]Entry, error)
}

// Entry is one submitted attendance row from the published sheet.
type Entry struct {
	Timestamp   time.Time
	Name        string
	MemberID    string
	Location    string
	ClockInTime string
}
