// Package schema builds schema.org JSON-LD documents for embedding in pages.
//
// Builders are pure: they map content records to fixed-shape structs whose
// optional fields are tagged omitempty, so absent values never reach the
// serialized output.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Context is the vocabulary every document is expressed in.
const Context = "https://schema.org"

// Type is a top-level schema.org type a page may declare.
type Type string

const (
	TypeMobileApplication Type = "MobileApplication"
	TypeFAQPage           Type = "FAQPage"
	TypeHowTo             Type = "HowTo"
	TypeReview            Type = "Review"
	TypeBreadcrumbList    Type = "BreadcrumbList"
	TypeOrganization      Type = "Organization"
)

// Types lists every supported top-level type.
var Types = []Type{
	TypeMobileApplication,
	TypeFAQPage,
	TypeHowTo,
	TypeReview,
	TypeBreadcrumbList,
	TypeOrganization,
}

// IsValid reports whether t is a supported type.
func (t Type) IsValid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// ParseType converts a declared type name into a Type.
func ParseType(name string) (Type, error) {
	t := Type(name)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// ImageObject is a schema.org ImageObject.
type ImageObject struct {
	Type    string `json:"@type"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

// imageObject returns nil for an empty URL so the owning field is omitted.
func imageObject(url string) *ImageObject {
	if url == "" {
		return nil
	}
	return &ImageObject{Type: "ImageObject", URL: url}
}

// Block pairs a document with its declared type.
type Block struct {
	Type Type
	Data any
}

// Marshal encodes the block for a <script type="application/ld+json">
// element. HTML-significant characters are escaped, so the output can never
// terminate the enclosing script element.
func (b Block) Marshal() (string, error) {
	data, err := json.Marshal(b.Data)
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", b.Type, err)
	}
	return string(data), nil
}

// MarshalIndent encodes the block in human readable form.
func (b Block) MarshalIndent() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.Data); err != nil {
		return "", fmt.Errorf("marshal %s: %w", b.Type, err)
	}
	return buf.String(), nil
}

// Set holds the structured-data blocks of one page, at most one per type.
// The zero value is ready to use.
type Set struct {
	blocks []Block
}

// Add stores data under t. A block already stored under t is replaced in
// place, keeping the original position.
func (s *Set) Add(t Type, data any) {
	for i := range s.blocks {
		if s.blocks[i].Type == t {
			s.blocks[i].Data = data
			return
		}
	}
	s.blocks = append(s.blocks, Block{Type: t, Data: data})
}

// Get returns the block stored under t.
func (s *Set) Get(t Type) (Block, bool) {
	for _, b := range s.blocks {
		if b.Type == t {
			return b, true
		}
	}
	return Block{}, false
}

// Has reports whether a block of type t is stored.
func (s *Set) Has(t Type) bool {
	_, ok := s.Get(t)
	return ok
}

// Len returns the number of stored blocks.
func (s *Set) Len() int {
	return len(s.blocks)
}

// Blocks returns the stored blocks in insertion order.
func (s *Set) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}
