package report

import "context"

// ReportService defines business logic for field report submissions and
// the attendance recap export.
type ReportService interface {
	// SubmitDisaster sends a disaster report, with up to 3 photos, to the
	// disaster form endpoint.
	SubmitDisaster(ctx context.Context, req DisasterReportRequest) (SubmitReportResponse, error)

	// SubmitActivity sends an activity report to the activity form
	// endpoint.
	SubmitActivity(ctx context.Context, req ActivityReportRequest) (SubmitReportResponse, error)

	// ListDisasters returns submitted disaster reports newest first.
	ListDisasters(ctx context.Context) (ListDisasterReportResponse, error)

	// AttendanceRecap builds an xlsx workbook of all submitted attendance
	// rows, one sheet per month.
	AttendanceRecap(ctx context.Context) (RecapResponse, error)
}
