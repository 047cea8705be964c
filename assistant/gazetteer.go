package assistant

// Static lookup data for entity extraction. Loaded once, never mutated.

// aliasGroup maps informal surface forms of a candidate name to its
// canonical uppercase form. Table order is the precedence for queries
// that mention more than one known candidate.
type aliasGroup struct {
	surfaces  []string
	canonical string
}

var candidateAliases = []aliasGroup{
	{[]string{"rafael fera", "fera"}, "RAFAEL FERA"},
	{[]string{"mariana carvalho", "dra. mariana", "dra mariana"}, "MARIANA CARVALHO"},
	{[]string{"léo moraes", "leo moraes"}, "LÉO MORAES"},
	{[]string{"hildon chaves", "hildon"}, "HILDON CHAVES"},
	{[]string{"marcos rocha", "coronel marcos rocha", "coronel rocha"}, "MARCOS ROCHA"},
	{[]string{"marcos rogério", "marcos rogerio"}, "MARCOS ROGÉRIO"},
	{[]string{"confúcio moura", "confucio moura"}, "CONFÚCIO MOURA"},
	{[]string{"sérgio gonçalves", "sergio goncalves"}, "SÉRGIO GONÇALVES"},
}

// municipalities is the gazetteer of the 52 municipalities of Rondônia,
// in canonical casing. Order matters: the capital and the largest cities
// come first because extraction returns the first name contained in the
// query, and short names can be substrings of longer ones.
var municipalities = []string{
	"Porto Velho",
	"Ji-Paraná",
	"Ariquemes",
	"Vilhena",
	"Cacoal",
	"Rolim de Moura",
	"Jaru",
	"Guajará-Mirim",
	"Ouro Preto do Oeste",
	"Machadinho d'Oeste",
	"Buritis",
	"Pimenta Bueno",
	"Candeias do Jamari",
	"Espigão d'Oeste",
	"Nova Mamoré",
	"Alta Floresta d'Oeste",
	"Alto Alegre dos Parecis",
	"Alto Paraíso",
	"Alvorada d'Oeste",
	"Cabixi",
	"Cacaulândia",
	"Campo Novo de Rondônia",
	"Castanheiras",
	"Cerejeiras",
	"Chupinguaia",
	"Colorado do Oeste",
	"Corumbiara",
	"Costa Marques",
	"Cujubim",
	"Governador Jorge Teixeira",
	"Itapuã do Oeste",
	"Ministro Andreazza",
	"Mirante da Serra",
	"Monte Negro",
	"Nova Brasilândia d'Oeste",
	"Nova União",
	"Novo Horizonte do Oeste",
	"Parecis",
	"Pimenteiras do Oeste",
	"Presidente Médici",
	"Primavera de Rondônia",
	"Rio Crespo",
	"Santa Luzia d'Oeste",
	"São Felipe d'Oeste",
	"São Francisco do Guaporé",
	"São Miguel do Guaporé",
	"Seringueiras",
	"Teixeirópolis",
	"Theobroma",
	"Urupá",
	"Vale do Anari",
	"Vale do Paraíso",
}

// stopWords are tokens a trigger-phrase regexp may capture that are never
// candidate names (articles, prepositions, question words).
var stopWords = map[string]bool{
	"de":        true,
	"do":        true,
	"da":        true,
	"dos":       true,
	"das":       true,
	"o":         true,
	"a":         true,
	"os":        true,
	"as":        true,
	"um":        true,
	"uma":       true,
	"em":        true,
	"no":        true,
	"na":        true,
	"nos":       true,
	"nas":       true,
	"para":      true,
	"por":       true,
	"com":       true,
	"que":       true,
	"qual":      true,
	"quais":     true,
	"quem":      true,
	"como":      true,
	"onde":      true,
	"quando":    true,
	"sobre":     true,
	"mais":      true,
	"menos":     true,
	"votos":     true,
	"votação":   true,
	"candidato": true,
	"candidata": true,
	"eleição":   true,
	"eleições":  true,
}
