package schema

import "github.com/jackpotai/web/internal/model"

// BestRating is the top of the rating scale used by reviews.
const BestRating = "5"

// Review is a schema.org Review.
type Review struct {
	Context       string `json:"@context"`
	Type          string `json:"@type"`
	ItemReviewed  Thing  `json:"itemReviewed"`
	ReviewRating  Rating `json:"reviewRating"`
	ReviewBody    string `json:"reviewBody"`
	Author        Thing  `json:"author"`
	DatePublished string `json:"datePublished,omitempty"`
}

// Thing is a minimal typed, named schema.org entity.
type Thing struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// Rating is a schema.org Rating.
type Rating struct {
	Type        string `json:"@type"`
	RatingValue string `json:"ratingValue"`
	BestRating  string `json:"bestRating"`
}

// NewReview builds a Review. The reviewed item defaults to a
// MobileApplication.
func NewReview(r model.Review) Review {
	return Review{
		Context: Context,
		Type:    string(TypeReview),
		ItemReviewed: Thing{
			Type: orDefault(r.ItemType, string(TypeMobileApplication)),
			Name: r.ItemName,
		},
		ReviewRating: Rating{
			Type:        "Rating",
			RatingValue: r.RatingValue,
			BestRating:  BestRating,
		},
		ReviewBody:    r.Body,
		Author:        Thing{Type: "Person", Name: r.Author},
		DatePublished: r.PublishDate,
	}
}
