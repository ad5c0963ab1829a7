package http

import (
	"net/http"

	"github.com/osavchuk/todostack/internal/utils"
)

func (h *Handler) buildInfo(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, info, http.StatusOK)
}
