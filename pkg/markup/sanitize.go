package markup

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips unsafe markup from free-form fragments such as before,
// between and after content or legend text.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a sanitizer on the bluemonday UGC policy, keeping class
// attributes so Bootstrap styling survives.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Globally()
	policy.AllowAttrs("role").Globally()
	return &Sanitizer{policy: policy}
}

// NewSanitizerWithPolicy wraps an existing policy.
func NewSanitizerWithPolicy(policy *bluemonday.Policy) *Sanitizer {
	if policy == nil {
		return NewSanitizer()
	}
	return &Sanitizer{policy: policy}
}

// Sanitize returns the cleaned fragment. A nil Sanitizer passes input through.
func (s *Sanitizer) Sanitize(fragment string) string {
	if s == nil || s.policy == nil || strings.TrimSpace(fragment) == "" {
		return fragment
	}
	return s.policy.Sanitize(fragment)
}
