package attendance

import (
	"context"

	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

// AttendanceService defines business logic for the daily piket attendance
// workflow.
type AttendanceService interface {
	// Status returns today's record and the derived workflow state.
	Status(ctx context.Context) (StatusResponse, error)

	// ClockIn records arrival with a photo and the last known position.
	// Only allowed inside the clock-in window.
	ClockIn(ctx context.Context, req ClockInRequest) (StatusResponse, error)

	// ClockOut records departure with a photo. Requires a structurally
	// valid clock-in and only allowed inside the clock-out window.
	ClockOut(ctx context.Context, req ClockOutRequest) (StatusResponse, error)

	// Autosave persists identity fields as they are typed. Ignored once
	// today's record is submitted.
	Autosave(ctx context.Context, req AutosaveRequest) error

	// Submit sends the completed record to the attendance form endpoint.
	// On failure the record keeps its pre-submit state.
	Submit(ctx context.Context) (StatusResponse, error)

	// Reset discards today's record.
	Reset(ctx context.Context) error

	// ReportPosition feeds a device position fix into the location watcher.
	ReportPosition(pos geo.Position)

	// ReportPositionDenied marks location access as denied by the device.
	ReportPositionDenied()
}
