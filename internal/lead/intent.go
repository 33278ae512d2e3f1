package lead

import "strings"

// intentMarkers are the substrings that flag a visit, appointment or
// call-back request. Matching is case-insensitive and deliberately
// high-recall: one hit is enough, negation is not considered. "visit" also
// covers the French "visite"/"visiter", "rappel" covers "rappelez".
var intentMarkers = []string{
	"visit",
	"rendez",
	"rdv",
	"appointment",
	"rappel",
	"appeler",
	"appelez",
	"call me",
	"call back",
	"callback",
	"contact",
	"disponible",
	"available",
	"intéressé",
	"interessé",
	"interested",
}

// IsContactIntent reports whether the message expresses contact, visit or
// call-back intent.
func IsContactIntent(message string) bool {
	msg := strings.ToLower(strings.TrimSpace(message))
	if msg == "" {
		return false
	}
	for _, marker := range intentMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
