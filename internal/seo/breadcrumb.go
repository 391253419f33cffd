// Package seo produces the crawler-facing artifacts of the site:
// breadcrumb trails, sitemaps and robots.txt.
package seo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jackpotai/web/internal/model"
)

// HomeLabel is the label of the root breadcrumb.
const HomeLabel = "Home"

// Breadcrumbs builds the trail for a request path: Home followed by one
// entry per path segment. Segment labels split on hyphens and upper-case
// the first letter of each word, leaving the rest untouched ("how-it-works"
// becomes "How It Works", "2fa-setup" becomes "2fa Setup"). URLs accumulate
// the segments seen so far.
func Breadcrumbs(path string) []model.BreadcrumbItem {
	items := []model.BreadcrumbItem{{Label: HomeLabel, URL: "/"}}

	// Casers keep state and must not be shared between goroutines.
	upper := cases.Upper(language.English)

	href := ""
	for _, segment := range strings.Split(model.NormalizePath(path), "/") {
		if segment == "" {
			continue
		}
		href += "/" + segment
		items = append(items, model.BreadcrumbItem{
			Label: segmentLabel(upper, segment),
			URL:   href,
		})
	}

	return items
}

func segmentLabel(upper cases.Caser, segment string) string {
	words := strings.Split(segment, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return strings.Join(words, " ")
}

// AbsoluteBreadcrumbs prefixes every item URL with siteURL.
func AbsoluteBreadcrumbs(siteURL string, items []model.BreadcrumbItem) []model.BreadcrumbItem {
	base := strings.TrimSuffix(siteURL, "/")
	out := make([]model.BreadcrumbItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.BreadcrumbItem{Label: item.Label, URL: base + item.URL})
	}
	return out
}
