package seo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SitemapFile is the entry point advertised to crawlers.
	SitemapFile = "sitemap.xml"
	// DefaultSitemapSize is the maximum number of URLs per sitemap file.
	DefaultSitemapSize = 5000
	// DefaultPriority and DefaultChangeFreq apply to entries that leave
	// them unset.
	DefaultPriority   = 0.7
	DefaultChangeFreq = "daily"

	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

// ErrInvalidSitemapSize is returned for a non-positive chunk size.
var ErrInvalidSitemapSize = errors.New("sitemap size must be positive")

// Entry is one URL listed in the sitemap. Loc is a site-relative path and
// a nil Priority means DefaultPriority.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   *float64
}

// File is a generated sitemap document.
type File struct {
	Name string
	Data []byte
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

type sitemapRef struct {
	Loc string `xml:"loc"`
}

// ChunkFile returns the file name of the n-th sitemap chunk.
func ChunkFile(n int) string {
	return "sitemap-" + strconv.Itoa(n) + ".xml"
}

// Sitemap renders the entries. When they fit in one file of size URLs the
// result is a single sitemap.xml; otherwise sitemap.xml is an index over
// sitemap-0.xml, sitemap-1.xml and so on.
func Sitemap(siteURL string, entries []Entry, size int) ([]File, error) {
	if size <= 0 {
		return nil, ErrInvalidSitemapSize
	}
	base := strings.TrimSuffix(siteURL, "/")

	urls := make([]sitemapURL, 0, len(entries))
	for _, e := range entries {
		urls = append(urls, toSitemapURL(base, e))
	}

	if len(urls) <= size {
		data, err := encodeXML(urlSet{Xmlns: sitemapNamespace, URLs: urls})
		if err != nil {
			return nil, err
		}
		return []File{{Name: SitemapFile, Data: data}}, nil
	}

	index := sitemapIndex{Xmlns: sitemapNamespace}
	var chunks []File
	for n, start := 0, 0; start < len(urls); n, start = n+1, start+size {
		end := min(start+size, len(urls))
		data, err := encodeXML(urlSet{Xmlns: sitemapNamespace, URLs: urls[start:end]})
		if err != nil {
			return nil, err
		}
		name := ChunkFile(n)
		chunks = append(chunks, File{Name: name, Data: data})
		index.Sitemaps = append(index.Sitemaps, sitemapRef{Loc: base + "/" + name})
	}

	data, err := encodeXML(index)
	if err != nil {
		return nil, err
	}
	return append([]File{{Name: SitemapFile, Data: data}}, chunks...), nil
}

func toSitemapURL(base string, e Entry) sitemapURL {
	priority := DefaultPriority
	if e.Priority != nil {
		priority = *e.Priority
	}
	changeFreq := e.ChangeFreq
	if changeFreq == "" {
		changeFreq = DefaultChangeFreq
	}

	u := sitemapURL{
		Loc:        base + e.Loc,
		ChangeFreq: changeFreq,
		Priority:   formatPriority(priority),
	}
	if !e.LastMod.IsZero() {
		u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
	}
	return u
}

// formatPriority keeps every significant digit and at least one decimal.
func formatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func encodeXML(v any) ([]byte, error) {
	data, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}
