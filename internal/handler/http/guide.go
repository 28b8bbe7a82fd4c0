package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tagana-serang/fieldops-backend-go/internal/domain/guide"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type GuideHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type guideHandlerImpl struct {
	guideService guide.GuideService
}

func NewGuideHandler(guideService guide.GuideService) GuideHandler {
	return &guideHandlerImpl{
		guideService: guideService,
	}
}

// List implements GuideHandler.
func (h *guideHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.guideService.Topics())
}

// Get implements GuideHandler.
func (h *guideHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	topic, ok := h.guideService.Topic(chi.URLParam(r, "slug"))
	if !ok {
		response.NotFound(w, "Panduan tidak ditemukan")
		return
	}

	response.Success(w, topic)
}
