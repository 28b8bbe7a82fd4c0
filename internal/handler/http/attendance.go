package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/attendance"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
	"github.com/tagana-serang/fieldops-backend-go/internal/pkg/geo"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Autosave(w http.ResponseWriter, r *http.Request)
	Submit(w http.ResponseWriter, r *http.Request)
	Reset(w http.ResponseWriter, r *http.Request)
	Position(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Status implements AttendanceHandler.
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Status(r.Context())
	if err != nil {
		slog.Error("failed to load attendance status", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := attendance.ClockInRequest{
		Name:     r.FormValue("nama"),
		MemberID: r.FormValue("nia"),
	}

	file, fileHeader, err := r.FormFile("foto")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Foto absen datang harus dilampirkan", nil)
			return
		}
		slog.Error("failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	resp, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absen datang tercatat.", resp)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	var req attendance.ClockOutRequest

	file, fileHeader, err := r.FormFile("foto")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Foto absen pulang harus dilampirkan", nil)
			return
		}
		slog.Error("failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	resp, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absen pulang tercatat.", resp)
}

// Autosave implements AttendanceHandler.
func (h *attendanceHandlerImpl) Autosave(w http.ResponseWriter, r *http.Request) {
	var req attendance.AutosaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.Autosave(r.Context(), req); err != nil {
		slog.Error("failed to autosave attendance draft", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// Submit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.Submit(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absensi berhasil dikirim.", resp)
}

// Reset implements AttendanceHandler.
func (h *attendanceHandlerImpl) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Reset(r.Context()); err != nil {
		slog.Error("failed to reset attendance record", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Data absensi hari ini dihapus.", nil)
}

type positionRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Denied    bool    `json:"denied"`
}

// Position implements AttendanceHandler. The device pushes its location
// fixes here; the watcher keeps only the most recent one.
func (h *attendanceHandlerImpl) Position(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.Denied {
		h.attendanceService.ReportPositionDenied()
		response.Success(w, nil)
		return
	}

	if req.Latitude < -90 || req.Latitude > 90 || req.Longitude < -180 || req.Longitude > 180 {
		response.BadRequest(w, "Koordinat tidak valid", nil)
		return
	}

	h.attendanceService.ReportPosition(geo.Position{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	response.Success(w, nil)
}
