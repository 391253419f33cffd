package content

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jackpotai/web/internal/model"
)

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

// SanitizeHTML strips everything outside the user generated content
// policy from a rich-text copy field.
func SanitizeHTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		richTextPolicy = bluemonday.UGCPolicy()
	})
	return richTextPolicy
}

// sanitizeSite rewrites the fields templates emit without escaping.
func sanitizeSite(site *model.Site) {
	for i := range site.Policy {
		section := &site.Policy[i]
		sanitizeAll(section.Paragraphs)
		sanitizeAll(section.Items)
		sanitizeAll(section.Closing)
	}
}

func sanitizeAll(values []string) {
	for i, v := range values {
		values[i] = SanitizeHTML(v)
	}
}
