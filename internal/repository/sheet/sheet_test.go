package sheet

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/sheets"
)

func csvServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnnouncementRepositoryList(t *testing.T) {
	srv := csvServer(t, "tanggal,judul,isi,kategori\n"+
		"25/07/2024,Apel Siaga,\"Apel siaga, wajib hadir\",Kegiatan\n"+
		"2024-08-01,Rapat Koordinasi,Rapat bulanan,Rapat\n"+
		",,,\n")

	repo := NewAnnouncementRepository(sheets.NewClient(), srv.URL, time.UTC)
	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Apel Siaga", items[0].Title)
	assert.Equal(t, "Apel siaga, wajib hadir", items[0].Body)
	assert.Equal(t, time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), items[0].Date)
	assert.Equal(t, "25/07/2024", items[0].RawDate)
	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), items[1].Date)
}

func TestMemberRepositorySkipsNamelessRows(t *testing.T) {
	srv := csvServer(t, "foto,nama,nia,kecamatan\n"+
		"https://img/a.jpg,Budi Santoso,123225425,Ciomas\n"+
		",,999,\n"+
		",Siti Aminah,123225426,Baros\n")

	repo := NewMemberRepository(sheets.NewClient(), srv.URL)
	members, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Budi Santoso", members[0].Name)
	assert.Equal(t, "Ciomas", members[0].District)
	assert.Equal(t, "123225426", members[1].MemberID)
}

func TestDisasterRepositoryCoordinateColumn(t *testing.T) {
	srv := csvServer(t, "timestamp,nama,nia,jenis,waktu,lokasi,korban,keterangan,koordinat\n"+
		"25/07/2024 19:30:25,Budi,123225425,Banjir,Sore,Kp. Cikoneng,2 KK,\"Air naik, 50cm\",\"-6.1149, 106.1502\"\n"+
		"26/07/2024 08:00:00,Siti,123225426,Longsor,Pagi,Padarincang,,-,Lokasi tidak dapat diakses\n")

	repo := NewDisasterRepository(sheets.NewClient(), srv.URL, time.UTC)
	reports, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	pos, ok := reports[0].Position()
	require.True(t, ok)
	assert.InDelta(t, -6.1149, pos.Latitude, 1e-9)
	assert.InDelta(t, 106.1502, pos.Longitude, 1e-9)
	assert.Equal(t, time.Date(2024, 7, 25, 19, 30, 25, 0, time.UTC), reports[0].Timestamp)

	_, ok = reports[1].Position()
	assert.False(t, ok)
}

func TestAttendanceHistoryRepositoryShortRows(t *testing.T) {
	// Rows older than the waktuDatang column may be short.
	srv := csvServer(t, "timestamp,nama,nia,lokasi,waktuDatang\n"+
		"25/07/2024 16:05:00,Budi,123225425\n")

	repo := NewAttendanceHistoryRepository(sheets.NewClient(), srv.URL, time.UTC)
	entries, err := repo.ListEntries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Budi", entries[0].Name)
	assert.Equal(t, "", entries[0].Location)
	assert.Equal(t, "", entries[0].ClockInTime)
}
