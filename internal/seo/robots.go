package seo

import (
	"fmt"
	"strings"
)

// Robots renders robots.txt allowing every crawler and advertising the
// sitemap index.
func Robots(siteURL string) []byte {
	base := strings.TrimSuffix(siteURL, "/")

	var b strings.Builder
	b.WriteString("# *\n")
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("# Host\n")
	fmt.Fprintf(&b, "Host: %s\n\n", base)
	b.WriteString("# Sitemaps\n")
	fmt.Fprintf(&b, "Sitemap: %s/%s\n", base, SitemapFile)
	return []byte(b.String())
}
