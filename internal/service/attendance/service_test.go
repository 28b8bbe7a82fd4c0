package attendance

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/jpeg"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagana-serang/fieldops-backend-go/internal/config"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/appscript"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/kvstore"
	"github.com/tagana-serang/fieldops-backend-go/internal/repository/local"
)

var wib = time.FixedZone("WIB", 7*3600)

// at builds a WIB time on a fixed piket day.
func at(hour, minute int) time.Time {
	return time.Date(2024, 7, 25, hour, minute, 0, 0, wib)
}

type fixture struct {
	service  attendance.AttendanceService
	store    attendance.DailyStore
	provider *geo.PushProvider
	watcher  *geo.Watcher
	now      time.Time
}

func newFixture(t *testing.T, now time.Time, formURL string) *fixture {
	t.Helper()

	fs, err := kvstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	store := local.NewAttendanceStore(fs)

	provider := geo.NewPushProvider()
	watcher := geo.NewWatcher(provider)
	require.NoError(t, watcher.Start(context.Background()))
	t.Cleanup(watcher.Stop)

	piket := config.PiketConfig{
		ClockInWindow:  mustWindow(t, "15:00-19:59"),
		ClockOutWindow: mustWindow(t, "20:30-22:00"),
	}

	f := &fixture{store: store, provider: provider, watcher: watcher, now: now}
	f.service = NewAttendanceService(store, watcher, provider, appscript.NewClient(), formURL, piket, wib, func() time.Time {
		return f.now
	})
	return f
}

// acquire feeds the watcher a fix and waits for it to be picked up.
func (f *fixture) acquire(t *testing.T) {
	t.Helper()
	f.provider.Offer(geo.Position{Latitude: -6.1149, Longitude: 106.1502})
	require.Eventually(t, func() bool {
		_, status := f.watcher.Latest()
		return status == geo.StatusAcquired
	}, time.Second, 5*time.Millisecond)
}

func mustWindow(t *testing.T, s string) config.Window {
	t.Helper()
	w, err := config.ParseWindow(s)
	require.NoError(t, err)
	return w
}

type readCloser struct {
	*bytes.Reader
}

func (readCloser) Close() error { return nil }

func photoUpload(t *testing.T) (multipart.File, *multipart.FileHeader) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return readCloser{bytes.NewReader(buf.Bytes())}, &multipart.FileHeader{
		Filename: "foto.jpg",
		Size:     int64(buf.Len()),
	}
}

func clockInReq(t *testing.T) attendance.ClockInRequest {
	file, header := photoUpload(t)
	return attendance.ClockInRequest{
		Name:       "Budi Santoso",
		MemberID:   "123225425",
		File:       file,
		FileHeader: header,
	}
}

func clockOutReq(t *testing.T) attendance.ClockOutRequest {
	file, header := photoUpload(t)
	return attendance.ClockOutRequest{File: file, FileHeader: header}
}

func TestClockInInsideWindow(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	resp, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	assert.Equal(t, attendance.StateClockedIn, resp.State)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "Budi Santoso", resp.Record.Name)
	assert.Equal(t, "2024-07-25T16:00:00+07:00", resp.Record.ClockInTime)
	assert.Equal(t, "-6.114900, 106.150200", resp.Record.Location)
	assert.True(t, resp.Record.HasValidClockIn())

	// Persisted, not just returned.
	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, *resp.Record, *stored)
}

func TestClockInOutsideWindow(t *testing.T) {
	f := newFixture(t, at(21, 0), "")

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	assert.ErrorIs(t, err, attendance.ErrOutsideClockInWindow)
}

func TestClockInTwice(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	_, err = f.service.ClockIn(context.Background(), clockInReq(t))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockInMissingIdentity(t *testing.T) {
	f := newFixture(t, at(16, 0), "")

	req := clockInReq(t)
	req.Name = ""
	_, err := f.service.ClockIn(context.Background(), req)
	assert.Error(t, err)
}

func TestClockInRecordsPosition(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	resp, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)
	assert.Equal(t, "-6.114900, 106.150200", resp.Record.Location)
}

func TestClockInRequiresPositionFix(t *testing.T) {
	f := newFixture(t, at(16, 0), "")

	_, status := f.watcher.Latest()
	require.Equal(t, geo.StatusSearching, status)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)

	// Nothing is written for the day on a refused clock-in.
	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestStatusClockInDisabledWithoutFix(t *testing.T) {
	f := newFixture(t, at(16, 0), "")

	require.NoError(t, f.service.Autosave(context.Background(), attendance.AutosaveRequest{
		Name:     "Budi Santoso",
		MemberID: "123225425",
	}))

	resp, err := f.service.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.CanClockIn)
	assert.NotEqual(t, attendance.StateReadyToClockIn, resp.State)

	f.acquire(t)
	resp, err = f.service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.StateReadyToClockIn, resp.State)
	assert.True(t, resp.CanClockIn)
}

func TestClockOutRequiresClockIn(t *testing.T) {
	f := newFixture(t, at(21, 0), "")

	_, err := f.service.ClockOut(context.Background(), clockOutReq(t))
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockOutRejectsBrokenClockIn(t *testing.T) {
	f := newFixture(t, at(21, 0), "")

	// A record restored from disk with a mangled clock-in timestamp.
	require.NoError(t, f.store.SaveDay(context.Background(), f.now, attendance.Record{
		Name:         "Budi Santoso",
		MemberID:     "123225425",
		ClockInTime:  "kemarin sore",
		ClockInPhoto: "data:image/jpeg;base64,xxxx",
	}))

	_, err := f.service.ClockOut(context.Background(), clockOutReq(t))
	assert.ErrorIs(t, err, attendance.ErrInvalidClockIn)
}

func TestClockOutOutsideWindow(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	_, err = f.service.ClockOut(context.Background(), clockOutReq(t))
	assert.ErrorIs(t, err, attendance.ErrOutsideClockOutWindow)
}

func TestClockOutInsideWindow(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	f.now = at(20, 45)
	resp, err := f.service.ClockOut(context.Background(), clockOutReq(t))
	require.NoError(t, err)

	assert.Equal(t, attendance.StateClockedOut, resp.State)
	assert.True(t, resp.CanSubmit)
	assert.Equal(t, "2024-07-25T20:45:00+07:00", resp.Record.ClockOutTime)
}

func TestSubmitSendsFormFields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		got = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			got[k] = v[0]
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "SUCCESS"})
	}))
	defer srv.Close()

	f := newFixture(t, at(16, 0), srv.URL)
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)
	f.now = at(20, 45)
	_, err = f.service.ClockOut(context.Background(), clockOutReq(t))
	require.NoError(t, err)

	resp, err := f.service.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.StateSubmitted, resp.State)

	assert.Equal(t, "Budi Santoso", got["nama"])
	assert.Equal(t, "123225425", got["nia"])
	assert.Equal(t, "16:00:00", got["waktuDatang"])
	assert.Equal(t, "20:45:00", got["waktuPulang"])
	assert.Contains(t, got["fotoDatang"], "data:image/jpeg;base64,")
	assert.Contains(t, got["fotoPulang"], "data:image/jpeg;base64,")

	// A second submit is refused.
	_, err = f.service.Submit(context.Background())
	assert.ErrorIs(t, err, attendance.ErrAttendanceSubmitted)
}

func TestSubmitRejectionKeepsRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "ERROR",
			"message": "NIA tidak terdaftar",
		})
	}))
	defer srv.Close()

	f := newFixture(t, at(16, 0), srv.URL)
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)
	f.now = at(20, 45)
	_, err = f.service.ClockOut(context.Background(), clockOutReq(t))
	require.NoError(t, err)

	_, err = f.service.Submit(context.Background())
	var subErr *appscript.SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, "NIA tidak terdaftar", subErr.Message)

	// The record is untouched and the submit can be retried.
	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.False(t, stored.Submitted)
	assert.True(t, stored.HasValidClockOut())
}

func TestAutosave(t *testing.T) {
	f := newFixture(t, at(14, 0), "")

	require.NoError(t, f.service.Autosave(context.Background(), attendance.AutosaveRequest{
		Name:     "Budi Santoso",
		MemberID: "123225425",
	}))

	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Budi Santoso", stored.Name)

	f.acquire(t)
	resp, err := f.service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.StateReadyToClockIn, resp.State)
	assert.False(t, resp.CanClockIn, "clock-in stays disabled before the window opens")
}

func TestAutosaveSuppressedAfterClockIn(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	require.NoError(t, f.service.Autosave(context.Background(), attendance.AutosaveRequest{
		Name:     "Orang Lain",
		MemberID: "999999",
	}))

	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	assert.Equal(t, "Budi Santoso", stored.Name)
}

func TestStatusUnfilledDay(t *testing.T) {
	f := newFixture(t, at(16, 0), "")

	resp, err := f.service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, attendance.StateUnfilled, resp.State)
	assert.False(t, resp.CanClockIn)
	assert.False(t, resp.CanClockOut)
	assert.Equal(t, "15:00-19:59", resp.ClockInWindow)
	assert.Equal(t, "20:30-22:00", resp.ClockOutWindow)
}

func TestReset(t *testing.T) {
	f := newFixture(t, at(16, 0), "")
	f.acquire(t)

	_, err := f.service.ClockIn(context.Background(), clockInReq(t))
	require.NoError(t, err)

	require.NoError(t, f.service.Reset(context.Background()))

	stored, err := f.store.LoadDay(context.Background(), f.now)
	require.NoError(t, err)
	assert.Nil(t, stored)
}
