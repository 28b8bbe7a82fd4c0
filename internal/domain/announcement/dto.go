package announcement

type AnnouncementResponse struct {
	Date     string `json:"tanggal"`
	Title    string `json:"judul"`
	Body     string `json:"isi"`
	Category string `json:"kategori"`
}

type ListAnnouncementResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	Fallback      bool                   `json:"fallback"`
}
