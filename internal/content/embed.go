package content

import (
	"embed"
	"io/fs"
)

//go:embed data/site.yaml
var embedded embed.FS

// EmbeddedFS returns the bundled site content. Callers pass it to Load to
// serve the default site.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}
	return sub
}
