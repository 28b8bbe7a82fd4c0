package guide

// Topic is one emergency-response guide entry. The dataset is static and
// ships with the binary so it stays available offline.
type Topic struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"judul"`
	Summary  string   `json:"ringkasan"`
	Steps    []string `json:"langkah"`
	Contacts []string `json:"kontak,omitempty"`
}
