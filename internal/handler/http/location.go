package http

import (
	"log/slog"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/location"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type LocationHandler interface {
	Map(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type locationHandlerImpl struct {
	locationService location.LocationService
}

func NewLocationHandler(locationService location.LocationService) LocationHandler {
	return &locationHandlerImpl{
		locationService: locationService,
	}
}

// Map implements LocationHandler.
func (h *locationHandlerImpl) Map(w http.ResponseWriter, r *http.Request) {
	snap, err := h.locationService.Snapshot(r.Context())
	if err != nil {
		slog.Error("failed to load map snapshot", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, snap)
}

// Refresh implements LocationHandler.
func (h *locationHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.locationService.Refresh(r.Context()); err != nil {
		slog.Error("failed to refresh map snapshot", "error", err)
		response.HandleError(w, err)
		return
	}

	snap, err := h.locationService.Snapshot(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Peta diperbarui.", snap)
}
