package attendance

import (
	"time"
)

// Record is the piket attendance record for a single day. It is persisted
// as JSON under the key returned by DayKey, so the json tags match the
// field names the submission form expects.
type Record struct {
	Name          string `json:"nama"`
	MemberID      string `json:"nia"`
	Location      string `json:"lokasi"`
	ClockInTime   string `json:"waktuDatang"`
	ClockInPhoto  string `json:"fotoDatang"`
	ClockOutTime  string `json:"waktuPulang"`
	ClockOutPhoto string `json:"fotoPulang"`
	Submitted     bool   `json:"terkirim"`
}

// HasIdentity reports whether the record carries both a name and a member
// number.
func (r *Record) HasIdentity() bool {
	return r.Name != "" && r.MemberID != ""
}

// HasValidClockIn reports whether the clock-in half of the record is
// structurally complete: identity, a parseable timestamp, and a photo.
// Records restored from disk may carry garbage in any of these fields.
func (r *Record) HasValidClockIn() bool {
	if r == nil || !r.HasIdentity() || r.ClockInPhoto == "" {
		return false
	}
	_, err := time.Parse(time.RFC3339, r.ClockInTime)
	return err == nil
}

// HasValidClockOut reports whether the clock-out half is complete.
func (r *Record) HasValidClockOut() bool {
	if r == nil || r.ClockOutPhoto == "" {
		return false
	}
	_, err := time.Parse(time.RFC3339, r.ClockOutTime)
	return err == nil
}

// State is the derived position of the daily record in the piket workflow.
type State string

const (
	StateUnfilled        State = "unfilled"
	StateReadyToClockIn  State = "ready_to_clock_in"
	StateClockedIn       State = "clocked_in"
	StateReadyToClockOut State = "ready_to_clock_out"
	StateClockedOut      State = "clocked_out"
	StateSubmitted       State = "submitted"
)

// DayKey returns the storage key for the attendance record of the given
// day, e.g. "attendance-2024-07-25".
func DayKey(t time.Time) string {
	return "attendance-" + t.Format("2006-01-02")
}
