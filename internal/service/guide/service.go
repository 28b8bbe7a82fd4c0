package guide

import (
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/guide"
)

type GuideServiceImpl struct {
	topics []guide.Topic
}

func NewGuideService() guide.GuideService {
	return &GuideServiceImpl{topics: topics()}
}

// Topics implements guide.GuideService.
func (s *GuideServiceImpl) Topics() []guide.Topic {
	return s.topics
}

// Topic implements guide.GuideService.
func (s *GuideServiceImpl) Topic(slug string) (guide.Topic, bool) {
	for _, t := range s.topics {
		if t.Slug == slug {
			return t, true
		}
	}
	return guide.Topic{}, false
}

// topics is the static guide content. It mirrors the printed posko
// handbook so the app keeps working without a connection.
func topics() []guide.Topic {
	return []guide.Topic{
		{
			Slug:    "banjir",
			Title:   "Banjir",
			Summary: "Penanganan awal ketika permukiman mulai tergenang.",
			Steps: []string{
				"Pantau ketinggian air dan laporkan ke koordinator posko.",
				"Prioritaskan evakuasi lansia, anak-anak, dan warga sakit.",
				"Matikan listrik di rumah yang tergenang sebelum evakuasi.",
				"Arahkan warga ke titik kumpul yang sudah ditentukan.",
				"Catat jumlah KK terdampak untuk laporan bencana.",
			},
			Contacts: []string{"BPBD Kab. Serang: (0254) 200-xxx", "PMI Serang: (0254) 201-xxx"},
		},
		{
			Slug:    "longsor",
			Title:   "Tanah Longsor",
			Summary: "Langkah aman di lokasi longsoran.",
			Steps: []string{
				"Jauhkan warga dari lereng dan area retakan tanah.",
				"Jangan melakukan penggalian tanpa tim SAR.",
				"Tandai area berbahaya dengan garis pembatas.",
				"Laporkan koordinat lokasi melalui formulir laporan bencana.",
			},
			Contacts: []string{"Basarnas Banten: 115"},
		},
		{
			Slug:    "gempa",
			Title:   "Gempa Bumi",
			Summary: "Tindakan saat dan sesudah guncangan.",
			Steps: []string{
				"Saat guncangan: lindungi kepala, jauhi kaca dan bangunan.",
				"Setelah guncangan: periksa korban dan kerusakan bangunan.",
				"Waspadai gempa susulan, jangan masuk bangunan retak.",
				"Dirikan titik pengungsian di lapangan terbuka.",
			},
		},
		{
			Slug:    "tsunami",
			Title:   "Tsunami",
			Summary: "Evakuasi pesisir setelah gempa kuat atau peringatan dini.",
			Steps: []string{
				"Segera arahkan warga menjauhi pantai ke dataran tinggi.",
				"Ikuti jalur evakuasi tsunami yang sudah terpasang.",
				"Jangan kembali sebelum pernyataan aman dari BMKG.",
			},
			Contacts: []string{"BMKG: 196"},
		},
		{
			Slug:    "kebakaran",
			Title:   "Kebakaran",
			Summary: "Penanganan kebakaran permukiman.",
			Steps: []string{
				"Hubungi pemadam kebakaran, sebutkan lokasi dengan jelas.",
				"Evakuasi warga melawan arah angin.",
				"Putus aliran listrik di sekitar titik api.",
				"Data kebutuhan darurat warga terdampak.",
			},
			Contacts: []string{"Damkar Kab. Serang: 113"},
		},
	}
}
