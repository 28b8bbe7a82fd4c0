package http

import (
	"log/slog"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/announcement"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type AnnouncementHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Latest(w http.ResponseWriter, r *http.Request)
}

type announcementHandlerImpl struct {
	announcementService announcement.AnnouncementService
}

func NewAnnouncementHandler(announcementService announcement.AnnouncementService) AnnouncementHandler {
	return &announcementHandlerImpl{
		announcementService: announcementService,
	}
}

// List implements AnnouncementHandler.
func (h *announcementHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.announcementService.List(r.Context())
	if err != nil {
		slog.Error("failed to list announcements", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Latest implements AnnouncementHandler.
func (h *announcementHandlerImpl) Latest(w http.ResponseWriter, r *http.Request) {
	latest, err := h.announcementService.Latest(r.Context())
	if err != nil {
		slog.Error("failed to load latest announcement", "error", err)
		response.HandleError(w, err)
		return
	}
	if latest == nil {
		response.NotFound(w, "Belum ada pengumuman")
		return
	}

	response.Success(w, latest)
}
