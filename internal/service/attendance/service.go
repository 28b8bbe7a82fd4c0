package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/config"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/appscript"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/photo"
)

// locationUnavailable marks a missing position fix in the status display
// and in submitted rows restored without one. The form backend stores it
// verbatim.
const locationUnavailable = "Lokasi tidak dapat diakses"

type AttendanceServiceImpl struct {
	store    attendance.DailyStore
	watcher  *geo.Watcher
	provider *geo.PushProvider
	client   *appscript.Client
	formURL  string
	piket    config.PiketConfig
	loc      *time.Location
	now      func() time.Time
}

func NewAttendanceService(
	store attendance.DailyStore,
	watcher *geo.Watcher,
	provider *geo.PushProvider,
	client *appscript.Client,
	formURL string,
	piket config.PiketConfig,
	loc *time.Location,
	now func() time.Time,
) attendance.AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceServiceImpl{
		store:    store,
		watcher:  watcher,
		provider: provider,
		client:   client,
		formURL:  formURL,
		piket:    piket,
		loc:      loc,
		now:      now,
	}
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context) (attendance.StatusResponse, error) {
	now := s.now().In(s.loc)

	rec, err := s.store.LoadDay(ctx, now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	return s.statusFor(now, rec), nil
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	now := s.now().In(s.loc)

	rec, err := s.store.LoadDay(ctx, now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	if rec != nil && rec.Submitted {
		return attendance.StatusResponse{}, attendance.ErrAttendanceSubmitted
	}
	if rec.HasValidClockIn() {
		return attendance.StatusResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !s.piket.ClockInWindow.Contains(now) {
		return attendance.StatusResponse{}, attendance.ErrOutsideClockInWindow
	}

	pos, locStatus := s.watcher.Latest()
	if locStatus != geo.StatusAcquired {
		return attendance.StatusResponse{}, attendance.ErrLocationUnavailable
	}

	photoData, err := photo.Process(req.File)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to process clock-in photo: %w", err)
	}

	updated := attendance.Record{
		Name:         strings.TrimSpace(req.Name),
		MemberID:     strings.TrimSpace(req.MemberID),
		Location:     fmt.Sprintf("%.6f, %.6f", pos.Latitude, pos.Longitude),
		ClockInTime:  now.Format(time.RFC3339),
		ClockInPhoto: photoData,
	}
	if err := s.store.SaveDay(ctx, now, updated); err != nil {
		return attendance.StatusResponse{}, err
	}

	return s.statusFor(now, &updated), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, req attendance.ClockOutRequest) (attendance.StatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	now := s.now().In(s.loc)

	rec, err := s.store.LoadDay(ctx, now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	if rec == nil || (rec.ClockInTime == "" && rec.ClockInPhoto == "") {
		return attendance.StatusResponse{}, attendance.ErrNotClockedIn
	}
	if rec.Submitted {
		return attendance.StatusResponse{}, attendance.ErrAttendanceSubmitted
	}
	if !rec.HasValidClockIn() {
		// Restored records can carry garbage clock-in fields. Clocking
		// out on top of those would submit a broken row later.
		return attendance.StatusResponse{}, attendance.ErrInvalidClockIn
	}
	if rec.HasValidClockOut() {
		return attendance.StatusResponse{}, attendance.ErrAlreadyClockedOut
	}
	if !s.piket.ClockOutWindow.Contains(now) {
		return attendance.StatusResponse{}, attendance.ErrOutsideClockOutWindow
	}

	photoData, err := photo.Process(req.File)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to process clock-out photo: %w", err)
	}

	rec.ClockOutTime = now.Format(time.RFC3339)
	rec.ClockOutPhoto = photoData
	if err := s.store.SaveDay(ctx, now, *rec); err != nil {
		return attendance.StatusResponse{}, err
	}

	return s.statusFor(now, rec), nil
}

// Autosave implements attendance.AttendanceService. Identity edits are
// dropped once the day is clocked in, since the submitted row must match
// the clock-in record.
func (s *AttendanceServiceImpl) Autosave(ctx context.Context, req attendance.AutosaveRequest) error {
	now := s.now().In(s.loc)

	rec, err := s.store.LoadDay(ctx, now)
	if err != nil {
		return err
	}
	if rec != nil && (rec.Submitted || rec.HasValidClockIn()) {
		return nil
	}
	if rec == nil {
		rec = &attendance.Record{}
	}

	rec.Name = strings.TrimSpace(req.Name)
	rec.MemberID = strings.TrimSpace(req.MemberID)

	return s.store.SaveDay(ctx, now, *rec)
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context) (attendance.StatusResponse, error) {
	now := s.now().In(s.loc)

	rec, err := s.store.LoadDay(ctx, now)
	if err != nil {
		return attendance.StatusResponse{}, err
	}
	if rec == nil || !rec.HasValidClockIn() {
		return attendance.StatusResponse{}, attendance.ErrNotClockedIn
	}
	if rec.Submitted {
		return attendance.StatusResponse{}, attendance.ErrAttendanceSubmitted
	}
	if !rec.HasValidClockOut() {
		return attendance.StatusResponse{}, attendance.ErrNotClockedOut
	}

	lokasi := rec.Location
	if lokasi == "" {
		lokasi = locationUnavailable
	}

	fields := map[string]string{
		"nama":        rec.Name,
		"nia":         rec.MemberID,
		"lokasi":      lokasi,
		"waktuDatang": s.clockDisplay(rec.ClockInTime),
		"fotoDatang":  rec.ClockInPhoto,
		"waktuPulang": s.clockDisplay(rec.ClockOutTime),
		"fotoPulang":  rec.ClockOutPhoto,
	}

	// The record is only marked submitted after the endpoint accepts it,
	// so a failed attempt can simply be retried.
	if err := s.client.Submit(ctx, s.formURL, fields); err != nil {
		return attendance.StatusResponse{}, err
	}

	rec.Submitted = true
	if err := s.store.SaveDay(ctx, now, *rec); err != nil {
		return attendance.StatusResponse{}, err
	}

	return s.statusFor(now, rec), nil
}

// Reset implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Reset(ctx context.Context) error {
	now := s.now().In(s.loc)
	return s.store.ClearDay(ctx, now)
}

// ReportPosition implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReportPosition(pos geo.Position) {
	s.provider.Offer(pos)
}

// ReportPositionDenied implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReportPositionDenied() {
	s.provider.Deny(geo.ErrDenied)
}

func (s *AttendanceServiceImpl) statusFor(now time.Time, rec *attendance.Record) attendance.StatusResponse {
	_, locStatus := s.watcher.Latest()
	state := s.deriveState(now, rec, locStatus)

	resp := attendance.StatusResponse{
		Date:            now.Format("2006-01-02"),
		State:           state,
		ClockInWindow:   s.piket.ClockInWindow.String(),
		ClockOutWindow:  s.piket.ClockOutWindow.String(),
		Location:        s.locationString(),
		LocationStatus:  string(locStatus),
		LocationMessage: locStatus.Message(),
		Record:          rec,
	}

	switch state {
	case attendance.StateUnfilled:
	case attendance.StateReadyToClockIn:
		resp.CanClockIn = s.piket.ClockInWindow.Contains(now)
	case attendance.StateClockedIn, attendance.StateReadyToClockOut:
		resp.CanClockOut = s.piket.ClockOutWindow.Contains(now)
	case attendance.StateClockedOut:
		resp.CanSubmit = true
	}

	return resp
}

func (s *AttendanceServiceImpl) deriveState(now time.Time, rec *attendance.Record, locStatus geo.Status) attendance.State {
	switch {
	case rec == nil || !rec.HasIdentity():
		return attendance.StateUnfilled
	case rec.Submitted:
		return attendance.StateSubmitted
	case rec.HasValidClockIn() && rec.HasValidClockOut():
		return attendance.StateClockedOut
	case rec.HasValidClockIn():
		if s.piket.ClockOutWindow.Contains(now) {
			return attendance.StateReadyToClockOut
		}
		return attendance.StateClockedIn
	default:
		// Ready requires a position fix; clock-in is refused without one.
		if locStatus != geo.StatusAcquired {
			return attendance.StateUnfilled
		}
		return attendance.StateReadyToClockIn
	}
}

func (s *AttendanceServiceImpl) locationString() string {
	pos, status := s.watcher.Latest()
	if status != geo.StatusAcquired {
		return locationUnavailable
	}
	return fmt.Sprintf("%.6f, %.6f", pos.Latitude, pos.Longitude)
}

// clockDisplay renders a stored RFC3339 timestamp the way the recap sheet
// shows it. An unparseable value is passed through untouched.
func (s *AttendanceServiceImpl) clockDisplay(stored string) string {
	t, err := time.Parse(time.RFC3339, stored)
	if err != nil {
		return stored
	}
	return t.In(s.loc).Format("15:04:05")
}
