// Package model defines the content entities rendered by the site.
package model

// Site is the complete content model for the marketing site.
// It is loaded once at startup and shared read-only between requests.
type Site struct {
	URL         string `yaml:"url"`
	Name        string `yaml:"name"`
	Tagline     string `yaml:"tagline"`
	LastUpdated string `yaml:"last_updated"`

	App          App          `yaml:"app"`
	Organization Organization `yaml:"organization"`

	Navigation []NavLink `yaml:"navigation"`
	Download   NavLink   `yaml:"download"`
	Footer     Footer    `yaml:"footer"`

	Pages     []Page     `yaml:"pages"`
	Redirects []Redirect `yaml:"redirects"`

	FAQs         []FAQ            `yaml:"faqs"`
	Features     []Feature        `yaml:"features"`
	Testimonials []Testimonial    `yaml:"testimonials"`
	HowTos       map[string]HowTo `yaml:"howtos"`
	Games        []Game           `yaml:"games"`
	Policy       []PolicySection  `yaml:"policy"`

	// Version identifies the loaded content revision. It is derived from
	// the content bytes and never read from the document itself.
	Version string `yaml:"-"`
}

// App describes the mobile application being marketed.
type App struct {
	Name                   string       `yaml:"name"`
	Description            string       `yaml:"description"`
	OperatingSystem        string       `yaml:"operating_system"`
	ApplicationCategory    string       `yaml:"application_category"`
	ApplicationSubCategory string       `yaml:"application_sub_category"`
	Price                  string       `yaml:"price"`
	PriceCurrency          string       `yaml:"price_currency"`
	Availability           string       `yaml:"availability"`
	RatingValue            string       `yaml:"rating_value"`
	RatingCount            string       `yaml:"rating_count"`
	ReviewCount            string       `yaml:"review_count"`
	AppStoreID             string       `yaml:"app_store_id"`
	Screenshots            []Screenshot `yaml:"screenshots"`
	FeatureList            []string     `yaml:"feature_list"`
	SoftwareVersion        string       `yaml:"software_version"`
	DownloadURL            string       `yaml:"download_url"`
	BrowserRequirements    string       `yaml:"browser_requirements"`
}

// Screenshot is an app preview image.
type Screenshot struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// Organization describes the publisher of the app.
type Organization struct {
	Name   string   `yaml:"name"`
	URL    string   `yaml:"url"`
	Logo   string   `yaml:"logo"`
	SameAs []string `yaml:"same_as"`
}

// NavLink is a single navigation entry.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// External reports whether the link leaves the site.
func (l NavLink) External() bool {
	return isAbsoluteURL(l.Href)
}

// Footer holds the shared footer copy.
type Footer struct {
	Copyright  string    `yaml:"copyright"`
	Disclaimer string    `yaml:"disclaimer"`
	Contact    string    `yaml:"contact"`
	Links      []NavLink `yaml:"links"`
}

// PageByPath returns the page registered at path.
func (s *Site) PageByPath(path string) (*Page, bool) {
	for i := range s.Pages {
		if s.Pages[i].Path == path {
			return &s.Pages[i], true
		}
	}
	return nil, false
}

// FeaturedTestimonial returns the testimonial marked as featured, if any.
func (s *Site) FeaturedTestimonial() (Testimonial, bool) {
	for _, t := range s.Testimonials {
		if t.Featured {
			return t, true
		}
	}
	return Testimonial{}, false
}
