// Package handler provides HTTP request handlers.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jackpotai/web/internal/middleware"
	"github.com/jackpotai/web/internal/service"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeXML  = "application/xml; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"

	cachePublicPage = "public, max-age=300"
	cachePrivate    = "private, max-age=0"
)

// internalErrorPage is served when rendering itself has failed, so it does
// not go through the template set.
const internalErrorPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8"><title>Something went wrong</title>
<link rel="stylesheet" href="/static/css/site.css"></head>
<body><main class="section center"><h1>Something went wrong</h1>
<p><a href="/">Back to Home</a></p></main></body></html>
`

// Handler serves the site pages.
type Handler struct {
	svc    *service.SiteService
	logger *slog.Logger
}

// New creates a new Handler instance.
func New(svc *service.SiteService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// NotFound renders the HTML not-found page with a 404 status.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.RenderNotFound()
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.Header().Set("Cache-Control", cachePrivate)
	writeHTML(w, http.StatusNotFound, body)
}

// MethodNotAllowed handles 405 responses.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// InternalError writes the static 500 page.
func (h *Handler) InternalError(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeHTML(w, http.StatusInternalServerError, []byte(internalErrorPage))
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)
	h.InternalError(w, r)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	write(w, status, contentTypeHTML, body)
}

func write(w http.ResponseWriter, status int, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
