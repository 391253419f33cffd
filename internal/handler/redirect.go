package handler

import (
	"errors"
	"net/http"

	"github.com/jackpotai/web/internal/service"
)

// Redirect answers a redirect source with its destination and status code.
// The query string is carried over to internal destinations.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	redirect, err := h.svc.ResolveRedirect(r.URL.Path)
	if err != nil {
		if errors.Is(err, service.ErrRedirectNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.logger.Debug("redirect",
		"from", redirect.From,
		"to", redirect.To,
		"status", int(redirect.Status),
	)

	if redirect.Status.IsPermanent() {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	} else {
		w.Header().Set("Cache-Control", cachePrivate)
	}
	http.Redirect(w, r, redirect.Location(r.URL.RawQuery), int(redirect.Status))
}
