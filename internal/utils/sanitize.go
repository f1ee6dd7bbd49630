package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer optionally strips HTML from user supplied text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer based on the user generated content policy.
// A disabled sanitizer returns text unchanged.
func NewSanitizer(enabled bool) *Sanitizer {
	if !enabled {
		return &Sanitizer{}
	}
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize applies the policy to text. The policy entity-escapes what it
// keeps, so sanitized text is meant for HTML rendering only.
func (s *Sanitizer) Sanitize(text string) string {
	if s == nil || s.policy == nil {
		return text
	}
	return strings.TrimSpace(s.policy.Sanitize(text))
}
