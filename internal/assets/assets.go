// Package assets bundles the stylesheet and icons served under /static.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// FS returns the static files rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
