package schema

import "github.com/jackpotai/web/internal/model"

// BreadcrumbList is a schema.org BreadcrumbList.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is a positioned schema.org ListItem.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// NewBreadcrumbList numbers items from 1 in order.
func NewBreadcrumbList(items []model.BreadcrumbItem) BreadcrumbList {
	elements := make([]ListItem, 0, len(items))
	for i, item := range items {
		elements = append(elements, ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     item.Label,
			Item:     item.URL,
		})
	}
	return BreadcrumbList{
		Context:         Context,
		Type:            string(TypeBreadcrumbList),
		ItemListElement: elements,
	}
}
