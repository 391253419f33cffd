package schema

import "github.com/jackpotai/web/internal/model"

// HowTo is a schema.org HowTo.
type HowTo struct {
	Context     string        `json:"@context"`
	Type        string        `json:"@type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Step        []HowToStep   `json:"step"`
	TotalTime   string        `json:"totalTime,omitempty"`
	Image       *ImageObject  `json:"image,omitempty"`
	Yield       string        `json:"yield,omitempty"`
	Tool        []HowToTool   `json:"tool,omitempty"`
	Supply      []HowToSupply `json:"supply,omitempty"`
}

// HowToStep is a numbered schema.org HowToStep.
type HowToStep struct {
	Type     string       `json:"@type"`
	Position int          `json:"position"`
	Name     string       `json:"name"`
	Text     string       `json:"text"`
	URL      string       `json:"url,omitempty"`
	Image    *ImageObject `json:"image,omitempty"`
}

// HowToTool is a schema.org HowToTool.
type HowToTool struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// HowToSupply is a schema.org HowToSupply.
type HowToSupply struct {
	Type             string       `json:"@type"`
	Name             string       `json:"name"`
	RequiredQuantity string       `json:"requiredQuantity,omitempty"`
	Image            *ImageObject `json:"image,omitempty"`
}

// NewHowTo builds a HowTo document. Steps are numbered from 1. Materials
// and supplies both become HowToSupply entries, materials first.
func NewHowTo(h model.HowTo) HowTo {
	steps := make([]HowToStep, 0, len(h.Steps))
	for i, step := range h.Steps {
		steps = append(steps, HowToStep{
			Type:     "HowToStep",
			Position: i + 1,
			Name:     step.Name,
			Text:     step.Text,
			URL:      step.URL,
			Image:    imageObject(step.ImageURL),
		})
	}

	doc := HowTo{
		Context:     Context,
		Type:        string(TypeHowTo),
		Name:        h.Name,
		Description: h.Description,
		Step:        steps,
		TotalTime:   h.TotalTime,
		Image:       imageObject(h.ImageURL),
		Yield:       h.Yield,
	}

	for _, tool := range h.Tools {
		doc.Tool = append(doc.Tool, HowToTool{Type: "HowToTool", Name: tool})
	}

	for _, material := range h.Materials {
		doc.Supply = append(doc.Supply, HowToSupply{Type: "HowToSupply", Name: material})
	}
	for _, item := range h.Supplies {
		doc.Supply = append(doc.Supply, HowToSupply{
			Type:             "HowToSupply",
			Name:             item.Name,
			RequiredQuantity: item.Quantity,
			Image:            imageObject(item.ImageURL),
		})
	}

	return doc
}
