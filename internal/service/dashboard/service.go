package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/announcement"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/dashboard"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/member"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
)

type DashboardServiceImpl struct {
	members       member.MemberRepository
	officers      member.OfficerRepository
	announcements announcement.AnnouncementRepository
	disasters     report.DisasterRepository
	activities    report.ActivityRepository
	history       attendance.HistoryRepository
	loc           *time.Location
	now           func() time.Time
}

func NewDashboardService(
	members member.MemberRepository,
	officers member.OfficerRepository,
	announcements announcement.AnnouncementRepository,
	disasters report.DisasterRepository,
	activities report.ActivityRepository,
	history attendance.HistoryRepository,
	loc *time.Location,
	now func() time.Time,
) dashboard.DashboardService {
	if now == nil {
		now = time.Now
	}
	return &DashboardServiceImpl{
		members:       members,
		officers:      officers,
		announcements: announcements,
		disasters:     disasters,
		activities:    activities,
		history:       history,
		loc:           loc,
		now:           now,
	}
}

// GetDashboard implements dashboard.DashboardService. Each sheet is read
// independently; one unreachable sheet only zeroes its own numbers.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	now := s.now().In(s.loc)
	resp := dashboard.DashboardResponse{
		TodayOnDuty: []string{},
		UpdatedAt:   now.Format(time.RFC3339),
	}

	if members, err := s.members.List(ctx); err != nil {
		slog.Warn("dashboard: member sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "members")
	} else {
		resp.MemberCount = len(members)
	}

	if officers, err := s.officers.List(ctx); err != nil {
		slog.Warn("dashboard: officer sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "officers")
	} else {
		resp.OfficerCount = len(officers)
	}

	if items, err := s.announcements.List(ctx); err != nil {
		slog.Warn("dashboard: announcement sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "announcements")
	} else {
		resp.AnnouncementCount = len(items)
		resp.LatestAnnouncement = latestOf(items)
	}

	if reports, err := s.disasters.List(ctx); err != nil {
		slog.Warn("dashboard: disaster sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "disaster_reports")
	} else {
		for _, r := range reports {
			ts := r.Timestamp.In(s.loc)
			if ts.Year() == now.Year() {
				resp.Reports.DisasterThisYear++
				if ts.Month() == now.Month() {
					resp.Reports.DisasterThisMonth++
				}
			}
		}
	}

	if reports, err := s.activities.List(ctx); err != nil {
		slog.Warn("dashboard: activity sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "activity_reports")
	} else {
		for _, r := range reports {
			ts := r.Timestamp.In(s.loc)
			if ts.Year() == now.Year() {
				resp.Reports.ActivityThisYear++
				if ts.Month() == now.Month() {
					resp.Reports.ActivityThisMonth++
				}
			}
		}
	}

	if entries, err := s.history.ListEntries(ctx); err != nil {
		slog.Warn("dashboard: attendance sheet unavailable", "error", err)
		resp.Unavailable = append(resp.Unavailable, "attendance")
	} else {
		today := now.Format("2006-01-02")
		for _, e := range entries {
			if e.Timestamp.In(s.loc).Format("2006-01-02") == today {
				resp.TodayOnDuty = append(resp.TodayOnDuty, e.Name)
			}
		}
	}

	return resp, nil
}

func latestOf(items []announcement.Announcement) *dashboard.LatestAnnouncement {
	var latest *announcement.Announcement
	for i := range items {
		if latest == nil || items[i].Date.After(latest.Date) {
			latest = &items[i]
		}
	}
	if latest == nil {
		return nil
	}

	date := latest.RawDate
	if !latest.Date.IsZero() {
		date = latest.Date.Format("02/01/2006")
	}
	return &dashboard.LatestAnnouncement{
		Date:  date,
		Title: latest.Title,
	}
}
