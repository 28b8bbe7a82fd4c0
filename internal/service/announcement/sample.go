package announcement

import "github.com/tagana-serang/fieldops-backend-go/internal/domain/announcement"

// sampleAnnouncements is the offline fallback shown when the published
// sheet cannot be reached.
func sampleAnnouncements() []announcement.AnnouncementResponse {
	return []announcement.AnnouncementResponse{
		{
			Date:     "15/07/2024",
			Title:    "Apel Kesiapsiagaan Bencana",
			Body:     "Seluruh anggota diharapkan hadir pada apel kesiapsiagaan di halaman kantor Dinas Sosial Kabupaten Serang pukul 08.00 WIB.",
			Category: "Kegiatan",
		},
		{
			Date:     "10/07/2024",
			Title:    "Jadwal Piket Posko Bulan Ini",
			Body:     "Jadwal piket posko bulan berjalan sudah ditempel di papan pengumuman posko. Mohon dicek dan dikonfirmasi ke koordinator.",
			Category: "Informasi",
		},
		{
			Date:     "01/07/2024",
			Title:    "Pendataan Ulang Anggota",
			Body:     "Anggota yang belum melengkapi data NIA agar segera menghubungi sekretariat.",
			Category: "Administrasi",
		},
	}
}
