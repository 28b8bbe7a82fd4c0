package member

type MemberResponse struct {
	PhotoURL string `json:"foto"`
	Name     string `json:"nama"`
	MemberID string `json:"nia"`
	District string `json:"kecamatan"`
}

type ListMemberResponse struct {
	Members  []MemberResponse `json:"members"`
	Total    int              `json:"total"`
	Fallback bool             `json:"fallback"`
}

type OfficerResponse struct {
	Name     string `json:"nama"`
	Position string `json:"jabatan"`
	PhotoURL string `json:"foto"`
}

type ListOfficerResponse struct {
	Officers []OfficerResponse `json:"officers"`
	Fallback bool              `json:"fallback"`
}
