package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/jackpotai/web/internal/model"
	"github.com/jackpotai/web/internal/schema"
)

// View is everything a page template can reference.
type View struct {
	Site        *model.Site
	Page        *model.Page
	Meta        Meta
	Nav         []model.NavLink
	Download    model.NavLink
	Breadcrumbs []model.BreadcrumbItem
	HowTo       *model.HowTo
	Schemas     []SchemaBlock
	Year        int
}

// SchemaBlock is a JSON-LD document ready to be placed in a script
// element.
type SchemaBlock struct {
	Type string
	JSON string
}

// NewSchemaBlocks marshals every block of set.
func NewSchemaBlocks(set *schema.Set) ([]SchemaBlock, error) {
	if set == nil {
		return nil, nil
	}
	out := make([]SchemaBlock, 0, set.Len())
	for _, b := range set.Blocks() {
		data, err := b.Marshal()
		if err != nil {
			return nil, err
		}
		out = append(out, SchemaBlock{Type: string(b.Type), JSON: data})
	}
	return out, nil
}

func (v View) context() pongo2.Context {
	ctx := pongo2.Context{
		"meta":        v.Meta,
		"nav":         v.Nav,
		"download":    v.Download,
		"breadcrumbs": v.Breadcrumbs,
		"schemas":     v.Schemas,
		"year":        v.Year,
	}
	if v.Site != nil {
		ctx["site"] = v.Site
		ctx["footer"] = v.Site.Footer
		ctx["last_updated"] = displayDate(v.Site.LastUpdated)
	}
	if v.Page != nil {
		ctx["page"] = v.Page
	}
	if v.HowTo != nil {
		ctx["howto"] = v.HowTo
	}
	return ctx
}

// displayDate renders an ISO date as "March 20, 2025". Values that do not
// parse are shown as written.
func displayDate(value string) string {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return value
	}
	return t.Format("January 2, 2006")
}

// OpenGraph holds the og:* properties of a page.
type OpenGraph struct {
	Type        string
	SiteName    string
	Title       string
	Description string
	URL         string
	Image       string
}

// Twitter holds the twitter:* card properties of a page.
type Twitter struct {
	Card        string
	Title       string
	Description string
	Image       string
}

// Meta is the head metadata of a page.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// NewMeta derives head metadata for page. A nil page yields the metadata
// of the not-found page, which is excluded from indexing.
func NewMeta(site *model.Site, page *model.Page) Meta {
	if page == nil {
		title := fmt.Sprintf("Page Not Found | %s", site.Name)
		return Meta{
			Title:       title,
			Description: site.Tagline,
			Robots:      "noindex",
			OG:          OpenGraph{Type: "website", SiteName: site.Name, Title: title, Description: site.Tagline},
			Twitter:     Twitter{Card: "summary", Title: title, Description: site.Tagline},
		}
	}

	canonical := AbsoluteURL(site.URL, page.Path)
	image := ""
	if page.Image != "" {
		image = AbsoluteURL(site.URL, page.Image)
	}
	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}

	return Meta{
		Title:       page.Title,
		Description: page.Description,
		Keywords:    page.KeywordList(),
		Canonical:   canonical,
		OG: OpenGraph{
			Type:        "website",
			SiteName:    site.Name,
			Title:       page.Title,
			Description: page.Description,
			URL:         canonical,
			Image:       image,
		},
		Twitter: Twitter{
			Card:        card,
			Title:       page.Title,
			Description: page.Description,
			Image:       image,
		},
	}
}

// AbsoluteURL resolves a site-relative path against base. Absolute URLs
// are returned unchanged.
func AbsoluteURL(base, path string) string {
	if path == "" || strings.HasPrefix(path, "https://") || strings.HasPrefix(path, "http://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return strings.TrimSuffix(base, "/") + path
}
