package http

import (
	"log/slog"
	"net/http"

	"github.com/tagana-serang/fieldops-backend-go/internal/domain/member"
	"github.com/tagana-serang/fieldops-backend-go/internal/handler/http/response"
)

type MemberHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Officers(w http.ResponseWriter, r *http.Request)
}

type memberHandlerImpl struct {
	memberService member.MemberService
}

func NewMemberHandler(memberService member.MemberService) MemberHandler {
	return &memberHandlerImpl{
		memberService: memberService,
	}
}

// List implements MemberHandler.
func (h *memberHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.memberService.List(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		slog.Error("failed to list members", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Officers implements MemberHandler.
func (h *memberHandlerImpl) Officers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.memberService.Officers(r.Context())
	if err != nil {
		slog.Error("failed to list officers", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
