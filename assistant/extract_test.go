package assistant

import "testing"

func TestExtractCandidateNameFromAlias(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"quero saber sobre o rafael fera", "RAFAEL FERA"},
		{"como foi a votação da dra mariana?", "MARIANA CARVALHO"},
		{"desempenho do HILDON em porto velho", "HILDON CHAVES"},
		{"qual o resultado do coronel rocha", "MARCOS ROCHA"},
	}

	for _, tt := range tests {
		if got := ExtractCandidateName(tt.query); got != tt.want {
			t.Errorf("ExtractCandidateName(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtractCandidateNameAliasPrecedence(t *testing.T) {
	// Both alias groups appear in the query; the group listed first in
	// the table wins, regardless of position in the text.
	got := ExtractCandidateName("compare mariana carvalho com rafael fera")
	if got != "RAFAEL FERA" {
		t.Errorf("alias precedence: got %q, want RAFAEL FERA", got)
	}
}

func TestExtractCandidateNameFromPattern(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"resultados do candidato inexistente", "INEXISTENTE"},
		{"votos de joão da silva", "JOÃO DA SILVA"},
		{"dados do carlos alberto", "CARLOS ALBERTO"},
	}

	for _, tt := range tests {
		if got := ExtractCandidateName(tt.query); got != tt.want {
			t.Errorf("ExtractCandidateName(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtractCandidateNameRejectsStopWordsAndShortNames(t *testing.T) {
	tests := []string{
		"votos de quem",         // stop word
		"dados da ana",          // 3 characters or fewer
		"quantos eleitores há?", // no trigger phrase
	}

	for _, query := range tests {
		if got := ExtractCandidateName(query); got != "" {
			t.Errorf("ExtractCandidateName(%q) = %q, want empty", query, got)
		}
	}
}

func TestExtractCandidateNameIdempotent(t *testing.T) {
	query := "votos de joão da silva"
	first := ExtractCandidateName(query)
	second := ExtractCandidateName(query)
	if first != second {
		t.Errorf("not idempotent: %q then %q", first, second)
	}
}

func TestExtractMunicipalityName(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"panorama de porto velho", "PORTO VELHO"},
		{"eleições em ji-paraná", "JI-PARANÁ"},
		{"como votou Cacoal no segundo turno", "CACOAL"},
		{"quantos eleitores tem o brasil", ""},
	}

	for _, tt := range tests {
		if got := ExtractMunicipalityName(tt.query); got != tt.want {
			t.Errorf("ExtractMunicipalityName(%q) = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestExtractMunicipalityNameIsContainmentBased(t *testing.T) {
	// Matching is substring containment, not token matching: a name
	// embedded inside a longer word still matches. Documented behavior.
	if got := ExtractMunicipalityName("o eleitorado jaruense cresceu"); got != "JARU" {
		t.Errorf("containment matching: got %q, want JARU", got)
	}
}

func TestExtractMunicipalityNameIdempotent(t *testing.T) {
	query := "panorama de porto velho"
	if ExtractMunicipalityName(query) != ExtractMunicipalityName(query) {
		t.Error("not idempotent")
	}
}
