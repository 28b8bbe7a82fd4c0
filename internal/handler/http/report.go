package http

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/report"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	SubmitDisaster(w http.ResponseWriter, r *http.Request)
	SubmitActivity(w http.ResponseWriter, r *http.Request)
	ListDisasters(w http.ResponseWriter, r *http.Request)
	AttendanceRecap(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// SubmitDisaster implements ReportHandler.
func (h *reportHandlerImpl) SubmitDisaster(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 32MB, up to 3 photos)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		slog.Error("failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := report.DisasterReportRequest{
		Name:         r.FormValue("nama"),
		MemberID:     r.FormValue("nia"),
		DisasterType: r.FormValue("jenisBencana"),
		OccurredAt:   r.FormValue("waktuKejadian"),
		Location:     r.FormValue("lokasiBencana"),
		Victims:      r.FormValue("korban"),
		Description:  r.FormValue("keterangan"),
		Coordinates:  r.FormValue("koordinat"),
	}

	files, headers, err := formFiles(r, "foto")
	if err != nil {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer closeAll(files)
	req.Files = files
	req.FileHeaders = headers

	resp, err := h.reportService.SubmitDisaster(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, resp.Message, nil)
}

// SubmitActivity implements ReportHandler.
func (h *reportHandlerImpl) SubmitActivity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		slog.Error("failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := report.ActivityReportRequest{
		Name:       r.FormValue("nama"),
		MemberID:   r.FormValue("nia"),
		Activity:   r.FormValue("kegiatan"),
		Place:      r.FormValue("tempat"),
		OccurredAt: r.FormValue("waktu"),
	}

	files, headers, err := formFiles(r, "foto")
	if err != nil {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer closeAll(files)
	req.Files = files
	req.FileHeaders = headers

	resp, err := h.reportService.SubmitActivity(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, resp.Message, nil)
}

// ListDisasters implements ReportHandler.
func (h *reportHandlerImpl) ListDisasters(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.ListDisasters(r.Context())
	if err != nil {
		slog.Error("failed to list disaster reports", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// AttendanceRecap implements ReportHandler. Streams the workbook as a
// download instead of the usual JSON envelope.
func (h *reportHandlerImpl) AttendanceRecap(w http.ResponseWriter, r *http.Request) {
	recap, err := h.reportService.AttendanceRecap(r.Context())
	if err != nil {
		slog.Error("failed to build attendance recap", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", recap.Filename))
	w.Write(recap.Content)
}

// formFiles opens every uploaded file under the given field name.
func formFiles(r *http.Request, field string) ([]multipart.File, []*multipart.FileHeader, error) {
	if r.MultipartForm == nil {
		return nil, nil, nil
	}

	headers := r.MultipartForm.File[field]
	files := make([]multipart.File, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			closeAll(files)
			return nil, nil, err
		}
		files = append(files, file)
	}
	return files, headers, nil
}

func closeAll(files []multipart.File) {
	for _, f := range files {
		f.Close()
	}
}
