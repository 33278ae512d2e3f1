package lead

import (
	"regexp"
	"strings"
)

// Extraction patterns. Phone matches North-American numbers with optional
// country code, parentheses and separator variations. Name only fires on an
// explicit self-introduction so ordinary prose never yields a false positive.
var (
	emailPattern = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)

	phonePattern = regexp.MustCompile(`(\+?1\s?)?(\(?\d{3}\)?)[\s.-]?\d{3}[\s.-]?\d{4}`)

	namePattern = regexp.MustCompile(`(?i)(?:je m['\x{2019}]appelle|mon nom est|moi c['\x{2019}]est|my name is|i['\x{2019}]?m called)\s+([A-Za-zÀ-ÖØ-öø-ÿ'\x{2019}-]{2,}(?:\s+[A-Za-zÀ-ÖØ-öø-ÿ'\x{2019}-]{2,}){0,3})`)
)

// Extract scans a message for an email address, a phone number and a
// self-introduced name. Each field is the first match or empty. Extract never
// fails and does not consult any session state.
func Extract(message string) Record {
	var rec Record

	if m := emailPattern.FindString(message); m != "" {
		rec.Email = strings.TrimSpace(m)
	}
	if m := phonePattern.FindString(message); m != "" {
		rec.Phone = strings.TrimSpace(m)
	}
	if m := namePattern.FindStringSubmatch(message); m != nil {
		rec.Name = strings.TrimSpace(m[1])
	}

	return rec
}
