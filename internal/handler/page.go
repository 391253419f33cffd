package handler

import (
	"errors"
	"net/http"

	"github.com/jackpotai/web/internal/service"
)

// Page renders the content page registered at the request path.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.RenderPage(r.Context(), r.URL.Path)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", cachePublicPage)
	writeHTML(w, http.StatusOK, body)
}
