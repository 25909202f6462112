// Package eligibility decides whether a listing's free text carries a
// verifiable contact channel: a Bangladeshi mobile number or an email on the
// trusted domain. Listings without one are never published.
package eligibility

import (
	"regexp"
	"strings"
)

var (
	// Characters that commonly interrupt phone numbers in job text.
	phoneSeparators = regexp.MustCompile(`[\s\-\(\)\.\+\/]`)

	// 11-digit local mobile numbering: 01, restricted third digit, bounded.
	localMobile = regexp.MustCompile(`\b01[3-9]\d{8}\b`)

	// Same number with the international prefix, checked against the
	// unstripped text. The leading group stands in for a word boundary,
	// which regexp cannot assert before "+".
	intlMobile = regexp.MustCompile(`(?:^|[^0-9+])\+8801[3-9]\d{8}\b`)

	emailPattern = regexp.MustCompile(`(?i)\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
)

// Filter classifies listing text by contact channel.
type Filter struct {
	trustedSuffix string // "@" + trusted domain, lower-cased
}

// New builds a Filter that accepts emails on exactly trustedDomain.
func New(trustedDomain string) *Filter {
	return &Filter{
		trustedSuffix: "@" + strings.ToLower(strings.TrimSpace(trustedDomain)),
	}
}

// Eligible reports whether text contains a verifiable contact channel.
//
// Phone numbers win outright: a valid mobile number qualifies the text no
// matter what emails appear alongside it. Emails are the stricter fallback;
// when they are the only signal, at least one must sit on the trusted domain.
func (f *Filter) Eligible(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}

	stripped := phoneSeparators.ReplaceAllString(text, "")
	if localMobile.MatchString(stripped) {
		return true
	}
	if intlMobile.MatchString(text) {
		return true
	}

	emails := emailPattern.FindAllString(text, -1)
	if len(emails) == 0 {
		return false
	}
	for _, email := range emails {
		if strings.HasSuffix(strings.ToLower(email), f.trustedSuffix) {
			return true
		}
	}
	return false
}
