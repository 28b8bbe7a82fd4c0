package http

import (
	"log/slog"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/dashboard"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("failed to build dashboard", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
