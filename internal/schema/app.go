package schema

import "github.com/jackpotai/web/internal/model"

// App defaults used when the content leaves a field empty.
const (
	DefaultAppName             = "JackpotAI"
	DefaultAppDescription      = "JackpotAI uses artificial intelligence to analyze lottery data and generate optimized number combinations for Powerball, Mega Millions, EuroMillions, and more."
	DefaultOperatingSystem     = "iOS"
	DefaultApplicationCategory = "UtilitiesApplication"
	DefaultPrice               = "0"
	DefaultPriceCurrency       = "USD"
	DefaultRatingValue         = "5.0"
	DefaultRatingCount         = "4"
	DefaultReviewCount         = "4"
	DefaultAppStoreID          = "6444195595"

	appStoreURLPrefix = "https://apps.apple.com/us/app/jackpotai/id"
)

// MobileApplication is a schema.org MobileApplication.
type MobileApplication struct {
	Context                string          `json:"@context"`
	Type                   string          `json:"@type"`
	Name                   string          `json:"name"`
	Description            string          `json:"description"`
	OperatingSystem        string          `json:"operatingSystem"`
	ApplicationCategory    string          `json:"applicationCategory"`
	ApplicationSubCategory string          `json:"applicationSubCategory,omitempty"`
	Offers                 Offer           `json:"offers"`
	AggregateRating        AggregateRating `json:"aggregateRating"`
	InstallURL             string          `json:"installUrl,omitempty"`
	DownloadURL            string          `json:"downloadUrl,omitempty"`
	Screenshot             []ImageObject   `json:"screenshot,omitempty"`
	FeatureList            []string        `json:"featureList,omitempty"`
	SoftwareVersion        string          `json:"softwareVersion,omitempty"`
	BrowserRequirements    string          `json:"browserRequirements,omitempty"`
}

// Offer is a schema.org Offer.
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability,omitempty"`
}

// AggregateRating is a schema.org AggregateRating.
type AggregateRating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	RatingCount string `json:"ratingCount"`
	ReviewCount string `json:"reviewCount"`
}

// AppStoreURL returns the App Store listing for id.
func AppStoreURL(id string) string {
	return appStoreURLPrefix + id
}

// WithAppDefaults fills empty fields of app with the JackpotAI listing.
func WithAppDefaults(app model.App) model.App {
	app.Name = orDefault(app.Name, DefaultAppName)
	app.Description = orDefault(app.Description, DefaultAppDescription)
	app.OperatingSystem = orDefault(app.OperatingSystem, DefaultOperatingSystem)
	app.ApplicationCategory = orDefault(app.ApplicationCategory, DefaultApplicationCategory)
	app.Price = orDefault(app.Price, DefaultPrice)
	app.PriceCurrency = orDefault(app.PriceCurrency, DefaultPriceCurrency)
	app.RatingValue = orDefault(app.RatingValue, DefaultRatingValue)
	app.RatingCount = orDefault(app.RatingCount, DefaultRatingCount)
	app.ReviewCount = orDefault(app.ReviewCount, DefaultReviewCount)
	app.AppStoreID = orDefault(app.AppStoreID, DefaultAppStoreID)
	return app
}

// NewMobileApplication builds the app listing. Empty fields take the
// defaults above; screenshot sources are used as given, so callers pass
// absolute URLs.
func NewMobileApplication(app model.App) MobileApplication {
	app = WithAppDefaults(app)

	doc := MobileApplication{
		Context:                Context,
		Type:                   string(TypeMobileApplication),
		Name:                   app.Name,
		Description:            app.Description,
		OperatingSystem:        app.OperatingSystem,
		ApplicationCategory:    app.ApplicationCategory,
		ApplicationSubCategory: app.ApplicationSubCategory,
		Offers: Offer{
			Type:          "Offer",
			Price:         app.Price,
			PriceCurrency: app.PriceCurrency,
			Availability:  app.Availability,
		},
		AggregateRating: AggregateRating{
			Type:        "AggregateRating",
			RatingValue: app.RatingValue,
			RatingCount: app.RatingCount,
			ReviewCount: app.ReviewCount,
		},
		InstallURL:          AppStoreURL(app.AppStoreID),
		DownloadURL:         app.DownloadURL,
		SoftwareVersion:     app.SoftwareVersion,
		BrowserRequirements: app.BrowserRequirements,
	}

	for _, shot := range app.Screenshots {
		if shot.Src == "" {
			continue
		}
		doc.Screenshot = append(doc.Screenshot, ImageObject{
			Type:    "ImageObject",
			URL:     shot.Src,
			Caption: shot.Caption,
		})
	}

	if len(app.FeatureList) > 0 {
		doc.FeatureList = append([]string(nil), app.FeatureList...)
	}

	return doc
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
