package dashboard

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined response for the home dashboard
// endpoint.
type DashboardResponse struct {
	MemberCount        int                 `json:"member_count"`
	OfficerCount       int                 `json:"officer_count"`
	AnnouncementCount  int                 `json:"announcement_count"`
	Reports            ReportStatsResponse `json:"reports"`
	LatestAnnouncement *LatestAnnouncement `json:"latest_announcement,omitempty"`
	TodayOnDuty        []string            `json:"today_on_duty"`
	// Unavailable names the sheets that could not be read, so a zero count
	// can be told apart from a real zero.
	Unavailable []string `json:"unavailable,omitempty"`
	UpdatedAt   string   `json:"updated_at"`
}

// ReportStatsResponse counts submitted reports for the current month and
// year, Asia/Jakarta time.
type ReportStatsResponse struct {
	DisasterThisMonth int `json:"disaster_this_month"`
	DisasterThisYear  int `json:"disaster_this_year"`
	ActivityThisMonth int `json:"activity_this_month"`
	ActivityThisYear  int `json:"activity_this_year"`
}

type LatestAnnouncement struct {
	Date  string `json:"tanggal"`
	Title string `json:"judul"`
}
