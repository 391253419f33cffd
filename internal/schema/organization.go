package schema

import "github.com/jackpotai/web/internal/model"

const (
	DefaultOrganizationName = "JackpotAI"
	DefaultOrganizationURL  = "https://jackpotai.app"
	DefaultOrganizationLogo = "https://jackpotai.app/logo.png"
)

// Organization is a schema.org Organization.
type Organization struct {
	Context string   `json:"@context"`
	Type    string   `json:"@type"`
	Name    string   `json:"name"`
	URL     string   `json:"url"`
	Logo    string   `json:"logo"`
	SameAs  []string `json:"sameAs"`
}

// NewOrganization builds the publisher document. SameAs is always
// serialized as an array, empty when no profiles are listed.
func NewOrganization(org model.Organization) Organization {
	sameAs := make([]string, 0, len(org.SameAs))
	sameAs = append(sameAs, org.SameAs...)

	return Organization{
		Context: Context,
		Type:    string(TypeOrganization),
		Name:    orDefault(org.Name, DefaultOrganizationName),
		URL:     orDefault(org.URL, DefaultOrganizationURL),
		Logo:    orDefault(org.Logo, DefaultOrganizationLogo),
		SameAs:  sameAs,
	}
}
