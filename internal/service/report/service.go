package report

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/appscript"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/photo"
)

type ReportServiceImpl struct {
	disasters report.DisasterRepository
	history   attendance.HistoryRepository
	client    *appscript.Client
	forms     FormEndpoints
	loc       *time.Location
	now       func() time.Time
}

// FormEndpoints holds the Apps Script endpoints the report forms post to.
type FormEndpoints struct {
	Disaster string
	Activity string
}

func NewReportService(
	disasters report.DisasterRepository,
	history attendance.HistoryRepository,
	client *appscript.Client,
	forms FormEndpoints,
	loc *time.Location,
	now func() time.Time,
) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		disasters: disasters,
		history:   history,
		client:    client,
		forms:     forms,
		loc:       loc,
		now:       now,
	}
}

// SubmitDisaster implements report.ReportService.
func (s *ReportServiceImpl) SubmitDisaster(ctx context.Context, req report.DisasterReportRequest) (report.SubmitReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SubmitReportResponse{}, err
	}

	ref := uuid.NewString()
	fields := map[string]string{
		"ref":           ref,
		"nama":          req.Name,
		"nia":           req.MemberID,
		"jenisBencana":  req.DisasterType,
		"waktuKejadian": req.OccurredAt,
		"lokasiBencana": req.Location,
		"korban":        req.Victims,
		"keterangan":    req.Description,
		"koordinat":     req.Coordinates,
	}
	if err := attachPhotos(fields, req.Files); err != nil {
		return report.SubmitReportResponse{}, err
	}

	if err := s.client.Submit(ctx, s.forms.Disaster, fields); err != nil {
		return report.SubmitReportResponse{}, err
	}

	return report.SubmitReportResponse{
		Message:     "Laporan bencana berhasil dikirim.",
		ReferenceID: ref,
	}, nil
}

// SubmitActivity implements report.ReportService.
func (s *ReportServiceImpl) SubmitActivity(ctx context.Context, req report.ActivityReportRequest) (report.SubmitReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SubmitReportResponse{}, err
	}

	ref := uuid.NewString()
	fields := map[string]string{
		"ref":      ref,
		"nama":     req.Name,
		"nia":      req.MemberID,
		"kegiatan": req.Activity,
		"tempat":   req.Place,
		"waktu":    req.OccurredAt,
	}
	if err := attachPhotos(fields, req.Files); err != nil {
		return report.SubmitReportResponse{}, err
	}

	if err := s.client.Submit(ctx, s.forms.Activity, fields); err != nil {
		return report.SubmitReportResponse{}, err
	}

	return report.SubmitReportResponse{
		Message:     "Laporan kegiatan berhasil dikirim.",
		ReferenceID: ref,
	}, nil
}

// ListDisasters implements report.ReportService.
func (s *ReportServiceImpl) ListDisasters(ctx context.Context) (report.ListDisasterReportResponse, error) {
	reports, err := s.disasters.List(ctx)
	if err != nil {
		return report.ListDisasterReportResponse{}, err
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})

	resp := report.ListDisasterReportResponse{
		Reports: make([]report.DisasterReportResponse, 0, len(reports)),
	}
	for _, r := range reports {
		ts := ""
		if !r.Timestamp.IsZero() {
			ts = r.Timestamp.Format("02/01/2006 15:04")
		}
		resp.Reports = append(resp.Reports, report.DisasterReportResponse{
			Timestamp:    ts,
			Name:         r.Name,
			MemberID:     r.MemberID,
			DisasterType: r.DisasterType,
			OccurredAt:   r.OccurredAt,
			Location:     r.Location,
			Victims:      r.Victims,
			Description:  r.Description,
			Coordinates:  r.Coordinates,
		})
	}

	return resp, nil
}

// attachPhotos resizes and inlines up to 3 uploaded photos as foto1..foto3.
func attachPhotos(fields map[string]string, files []multipart.File) error {
	for i, file := range files {
		data, err := photo.Process(file)
		if err != nil {
			return fmt.Errorf("failed to process report photo %d: %w", i+1, err)
		}
		fields[fmt.Sprintf("foto%d", i+1)] = data
	}
	return nil
}
