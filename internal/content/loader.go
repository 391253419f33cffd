// Package content loads and validates the site content document.
package content

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/schema"
)

// FileName is the content document looked up in the content filesystem.
const FileName = "site.yaml"

// DefaultSiteURL is used when neither the document nor the caller sets one.
const DefaultSiteURL = "https://jackpotai.app"

var (
	// ErrEmptyContent is returned for a document without any YAML nodes.
	ErrEmptyContent = errors.New("content document is empty")
	// ErrInvalidContent wraps every validation failure.
	ErrInvalidContent = errors.New("invalid content")
)

type options struct {
	siteURL string
}

// Option customizes Load.
type Option func(*options)

// WithSiteURL overrides the site URL declared in the document.
func WithSiteURL(url string) Option {
	return func(o *options) {
		o.siteURL = strings.TrimSpace(url)
	}
}

// Load reads FileName from fsys, applies defaults, sanitizes rich text and
// validates the result.
func Load(fsys fs.FS, opts ...Option) (*model.Site, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	data, err := fs.ReadFile(fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", FileName, err)
	}

	site, err := parse(data)
	if err != nil {
		return nil, err
	}

	if o.siteURL != "" {
		site.URL = o.siteURL
	}
	applyDefaults(site)
	sanitizeSite(site)

	if err := Validate(site); err != nil {
		return nil, err
	}

	// The URL is part of every rendered page, so it is part of the version.
	h := sha256.New()
	h.Write(data)
	h.Write([]byte(site.URL))
	site.Version = hex.EncodeToString(h.Sum(nil))[:12]

	return site, nil
}

// LoadDir loads the content document from a directory on disk.
func LoadDir(dir string, opts ...Option) (*model.Site, error) {
	return Load(os.DirFS(dir), opts...)
}

func parse(data []byte) (*model.Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site model.Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyContent
		}
		return nil, fmt.Errorf("content: parse %s: %w", FileName, err)
	}
	return &site, nil
}

func applyDefaults(site *model.Site) {
	site.URL = strings.TrimSuffix(site.URL, "/")
	if site.URL == "" {
		site.URL = DefaultSiteURL
	}

	site.App = schema.WithAppDefaults(site.App)
	if site.Name == "" {
		site.Name = site.App.Name
	}
	if site.Download.Href == "" {
		site.Download = model.NavLink{Label: "Download", Href: schema.AppStoreURL(site.App.AppStoreID)}
	}

	for i := range site.Redirects {
		r := &site.Redirects[i]
		r.From = model.NormalizePath(r.From)
		if r.Status == 0 {
			r.Status = model.DefaultRedirectType
		}
	}
}
