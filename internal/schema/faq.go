package schema

import "github.com/jackpotai/web/internal/model"

// FAQPage is a schema.org FAQPage.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a schema.org Question with its accepted answer.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQPage builds an FAQPage with one Question per entry, in order.
func NewFAQPage(faqs []model.FAQ) FAQPage {
	questions := make([]Question, 0, len(faqs))
	for _, faq := range faqs {
		questions = append(questions, Question{
			Type: "Question",
			Name: faq.Question,
			AcceptedAnswer: Answer{
				Type: "Answer",
				Text: faq.Answer,
			},
		})
	}

	return FAQPage{
		Context:    Context,
		Type:       string(TypeFAQPage),
		MainEntity: questions,
	}
}
