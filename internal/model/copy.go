package model

// FAQ is a question and its answer.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// HowToStep is one instruction of a HowTo.
type HowToStep struct {
	Name     string `yaml:"name"`
	Text     string `yaml:"text"`
	URL      string `yaml:"url"`
	ImageURL string `yaml:"image_url"`
	// Icon, ImageAlt and Detail are presentation-only and never reach
	// structured data.
	Icon     string `yaml:"icon"`
	ImageAlt string `yaml:"image_alt"`
	Detail   string `yaml:"detail"`
}

// HowToSupply is an item consumed while following a HowTo.
type HowToSupply struct {
	Name     string `yaml:"name"`
	Quantity string `yaml:"quantity"`
	ImageURL string `yaml:"image_url"`
}

// HowTo is a sequence of steps with optional supporting metadata.
type HowTo struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Steps       []HowToStep   `yaml:"steps"`
	TotalTime   string        `yaml:"total_time"` // ISO 8601 duration, e.g. PT30M
	ImageURL    string        `yaml:"image_url"`
	Yield       string        `yaml:"yield"`
	Tools       []string      `yaml:"tools"`
	Materials   []string      `yaml:"materials"`
	Supplies    []HowToSupply `yaml:"supplies"`
}

// Review is a rating of an item by a named author.
type Review struct {
	ItemName    string
	ItemType    string
	RatingValue string
	Body        string
	Author      string
	PublishDate string
}

// BreadcrumbItem is one entry in a breadcrumb trail.
type BreadcrumbItem struct {
	Label string
	URL   string
}

// Feature is a marketing feature card.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Gradient    string `yaml:"gradient"`
}

// Testimonial is a user quote shown on the home page.
type Testimonial struct {
	Quote    string `yaml:"quote"`
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Avatar   string `yaml:"avatar"`
	Rating   string `yaml:"rating"`
	Date     string `yaml:"date"`
	Featured bool   `yaml:"featured"`
}

// Initial returns the first letter of the author name for avatar badges.
func (t Testimonial) Initial() string {
	for _, r := range t.Name {
		return string(r)
	}
	return ""
}

// Game describes a supported lottery game.
type Game struct {
	Name       string   `yaml:"name"`
	Icon       string   `yaml:"icon"`
	Paragraphs []string `yaml:"paragraphs"`
}

// PolicySection is one heading of the privacy policy. Paragraphs and
// Items may contain a restricted subset of HTML.
type PolicySection struct {
	Heading    string   `yaml:"heading"`
	Paragraphs []string `yaml:"paragraphs"`
	Items      []string `yaml:"items"`
	Closing    []string `yaml:"closing"`
}
