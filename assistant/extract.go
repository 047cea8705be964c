package assistant

import (
	"regexp"
	"strings"
)

// Entity extraction over raw user text. Both extractors are pure: no
// state, same input always yields the same output. Matching is substring
// containment on the lowercased query, which is tolerant by design
// (a short name embedded in a longer word will match) — gazetteer and
// alias table order is the precedence knob.

// namePatterns capture a candidate name following a trigger phrase.
// Evaluated in order; the first pattern whose capture survives the
// stop-word and length filters wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sobre\s+(?:o\s+|a\s+)?candidat[oa]\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
	regexp.MustCompile(`(?i)candidat[oa]\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
	regexp.MustCompile(`(?i)informaç(?:ões|ao|ão)\s+(?:sobre|de|do|da)\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
	regexp.MustCompile(`(?i)dados\s+(?:de|do|da)\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
	regexp.MustCompile(`(?i)votos\s+(?:de|do|da)\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
	regexp.MustCompile(`(?i)desempenho\s+(?:de|do|da)\s+([a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+(?:\s+[a-zA-ZáàâãéêíóôõúüçÁÀÂÃÉÊÍÓÔÕÚÜÇ]+)*)`),
}

// ExtractCandidateName resolves a candidate name mentioned in the query.
// The alias table is tried first; trigger-phrase patterns are the
// fallback. Returns "" when nothing resolves. No typo tolerance.
func ExtractCandidateName(query string) string {
	lower := strings.ToLower(query)

	for _, group := range candidateAliases {
		for _, surface := range group.surfaces {
			if strings.Contains(lower, surface) {
				return group.canonical
			}
		}
	}

	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(query)
		if len(m) < 2 {
			continue
		}
		name := strings.TrimSpace(m[1])
		if len(name) <= 3 {
			continue
		}
		if stopWords[strings.ToLower(name)] {
			continue
		}
		return strings.ToUpper(name)
	}

	return ""
}

// ExtractMunicipalityName resolves a municipality mentioned in the query
// by containment against the gazetteer, first match in gazetteer order.
// The result is the canonical uppercase form, "" when nothing matches.
func ExtractMunicipalityName(query string) string {
	lower := strings.ToLower(query)

	for _, name := range municipalities {
		if strings.Contains(lower, strings.ToLower(name)) {
			return strings.ToUpper(name)
		}
	}

	return ""
}
