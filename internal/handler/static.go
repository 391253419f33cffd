package handler

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// Static serves the bundled assets below prefix. Directories and missing
// files go to notFound, so the asset tree is never listed.
func Static(prefix string, files fs.FS, notFound http.Handler) http.Handler {
	server := http.StripPrefix(prefix, http.FileServer(http.FS(files)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(strings.TrimPrefix(r.URL.Path, prefix))
		if name == "/" || name == "" {
			name = "."
		}
		info, err := fs.Stat(files, name)
		if err != nil || info.IsDir() {
			notFound.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Cache-Control", "public, max-age=86400")
		server.ServeHTTP(w, r)
	})
}
