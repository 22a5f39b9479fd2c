package domain

import "time"

// Evidence is an immutable proof record that a checklist obligation was acted
// upon. Evidence lists are append-only; entries are never edited in place.
type Evidence struct {
	ID        string
	Type      EvidenceType
	Title     string
	Href      string
	Language  Language // empty when the record carries no language tag
	Meta      string   // free text, e.g. delivery scope "193/193 states"
	CreatedAt time.Time
}

// EvidenceLanguages collects the set of language tags present in a list of
// evidence records. Untagged records are ignored.
func EvidenceLanguages(evidence []Evidence) map[Language]bool {
	langs := make(map[Language]bool)
	for _, ev := range evidence {
		if ev.Language != "" {
			langs[ev.Language] = true
		}
	}
	return langs
}
