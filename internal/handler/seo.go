package handler

import (
	"errors"
	"net/http"
	"path"

	"github.com/jackpotai/web/internal/service"
)

// Sitemap serves sitemap.xml and its numbered chunks.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.SitemapFile(path.Base(r.URL.Path))
	if err != nil {
		if errors.Is(err, service.ErrSitemapNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, r, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	write(w, http.StatusOK, contentTypeXML, data)
}

// Robots serves robots.txt.
func (h *Handler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	write(w, http.StatusOK, contentTypeText, h.svc.Robots())
}
