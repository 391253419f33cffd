package model

import (
	"net/http"
	"strconv"
	"strings"
)

// RedirectType represents the HTTP redirect status code.
type RedirectType int

const (
	RedirectPermanent         RedirectType = http.StatusMovedPermanently  // 301
	RedirectFound             RedirectType = http.StatusFound             // 302
	RedirectTemporary         RedirectType = http.StatusTemporaryRedirect // 307
	RedirectPermanentRedirect RedirectType = http.StatusPermanentRedirect // 308

	// DefaultRedirectType matches the permanent redirects emitted by the
	// previous site build.
	DefaultRedirectType = RedirectPermanentRedirect
)

// IsValid checks if the redirect type is a supported 3xx code.
func (r RedirectType) IsValid() bool {
	switch r {
	case RedirectPermanent, RedirectFound, RedirectTemporary, RedirectPermanentRedirect:
		return true
	}
	return false
}

// IsPermanent reports whether clients may cache the redirect.
func (r RedirectType) IsPermanent() bool {
	return r == RedirectPermanent || r == RedirectPermanentRedirect
}

func (r RedirectType) String() string {
	return strconv.Itoa(int(r))
}

// Redirect maps a source path to a destination.
type Redirect struct {
	From   string       `yaml:"from"`
	To     string       `yaml:"to"`
	Status RedirectType `yaml:"status"`
}

// IsExternal reports whether the destination is an absolute URL.
func (r Redirect) IsExternal() bool {
	return isAbsoluteURL(r.To)
}

// Location returns the destination for a request carrying rawQuery.
// Queries are carried over to internal destinations only.
func (r Redirect) Location(rawQuery string) string {
	if rawQuery == "" || r.IsExternal() || strings.Contains(r.To, "?") {
		return r.To
	}
	return r.To + "?" + rawQuery
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
