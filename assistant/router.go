package assistant

import (
	"context"
	"strings"

	"electoral_site/config"
)

// The router is an ordered (match, run) table evaluated top to bottom
// against the lowercased query plus the extracted entities. A rule whose
// run returns an empty report does NOT stop the scan: the router falls
// through to the next rule, so a candidate guard that finds no rows can
// fail over to a municipality guard. The order below is a precedence
// policy: specific intents (zone priority, rankings) come before the
// generic candidate/municipality/summary fallbacks.
type intentRule struct {
	name  string
	match func(q, candidate, municipality string) bool
	run   func(ctx context.Context, a *Assistant, candidate, municipality string) (string, error)
}

func containsAny(q string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(q, t) {
			return true
		}
	}
	return false
}

var intentRules = []intentRule{
	{
		name: "priority-zones",
		match: func(q, _, _ string) bool {
			return containsAny(q, "zona", "zonas") &&
				containsAny(q, "prioritária", "prioritaria", "prioridade")
		},
		run: func(ctx context.Context, a *Assistant, _, _ string) (string, error) {
			rows, err := a.fetcher.TopTurnoutZones(ctx, config.MunicipalYear, config.Round)
			if err != nil {
				return "", err
			}
			return FormatPriorityReport(ScorePriorityZones(rows)), nil
		},
	},
	{
		name: "strength-map",
		match: func(q, _, _ string) bool {
			return (strings.Contains(q, "mapa") && containsAny(q, "força", "forca")) ||
				containsAny(q, "força eleitoral", "forca eleitoral")
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			municipality = orDefault(municipality)
			votes, err := a.fetcher.VotesByZone(ctx, municipality, config.OfficeMayor,
				config.MunicipalYear, config.Round, config.CapStrength)
			if err != nil {
				return "", err
			}
			if len(votes) == 0 {
				return "", nil
			}
			turnout, err := a.fetcher.TurnoutByMunicipality(ctx, municipality, config.MunicipalYear, config.Round)
			if err != nil {
				return "", err
			}
			return FormatStrengthReport(municipality, BuildStrengthMap(votes, turnout)), nil
		},
	},
	{
		name: "zone-analysis",
		match: func(q, _, _ string) bool {
			return containsAny(q, "zona", "zonas")
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			municipality = orDefault(municipality)
			rows, err := a.fetcher.VotesByZone(ctx, municipality, config.OfficeMayor,
				config.MunicipalYear, config.Round, config.CapZone)
			if err != nil {
				return "", err
			}
			return FormatZoneReport(municipality, GroupZoneVotes(rows)), nil
		},
	},
	{
		name: "historical",
		match: func(q, _, _ string) bool {
			return containsAny(q, "comparar", "comparação", "comparacao", "comparativo",
				"histórico", "historico", "evolução", "evolucao", "crescimento") ||
				(strings.Contains(q, "2020") && strings.Contains(q, "2024"))
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			earlierRows, err := a.fetcher.TurnoutByYear(ctx, municipality, config.PreviousYear)
			if err != nil {
				return "", err
			}
			laterRows, err := a.fetcher.TurnoutByYear(ctx, municipality, config.MunicipalYear)
			if err != nil {
				return "", err
			}
			if len(earlierRows) == 0 && len(laterRows) == 0 {
				return "", nil
			}
			earlier := BuildSnapshot(config.PreviousYear, earlierRows)
			later := BuildSnapshot(config.MunicipalYear, laterRows)
			return FormatHistoricalReport(municipality, earlier, later), nil
		},
	},
	{
		name: "top-mayors",
		match: func(q, _, _ string) bool {
			return strings.Contains(q, "prefeito") && rankingIntent(q)
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			return a.ranking(ctx, "PREFEITOS MAIS VOTADOS", config.OfficeMayor,
				municipality, config.MunicipalYear, 10)
		},
	},
	{
		name: "top-council",
		match: func(q, _, _ string) bool {
			return strings.Contains(q, "vereador") && rankingIntent(q)
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			return a.ranking(ctx, "VEREADORES MAIS VOTADOS", config.OfficeCouncil,
				municipality, config.MunicipalYear, 15)
		},
	},
	{
		name: "top-federal-deputies",
		match: func(q, _, _ string) bool {
			return containsAny(q, "deputado federal", "deputados federais")
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			return a.ranking(ctx, "DEPUTADOS FEDERAIS MAIS VOTADOS", config.OfficeFederalDep,
				municipality, config.GeneralYear, 10)
		},
	},
	{
		name: "top-state-deputies",
		match: func(q, _, _ string) bool {
			return containsAny(q, "deputado estadual", "deputados estaduais")
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			return a.ranking(ctx, "DEPUTADOS ESTADUAIS MAIS VOTADOS", config.OfficeStateDep,
				municipality, config.GeneralYear, 10)
		},
	},
	{
		name: "governor",
		match: func(q, _, _ string) bool {
			return strings.Contains(q, "governador")
		},
		run: func(ctx context.Context, a *Assistant, _, _ string) (string, error) {
			rows, err := a.fetcher.VotesByOffice(ctx, config.OfficeGovernor, "",
				config.GeneralYear, config.Round)
			if err != nil {
				return "", err
			}
			return FormatRankingReport("GOVERNADOR — MAIS VOTADOS", config.GeneralYear,
				RankCandidates(rows, true, 10)), nil
		},
	},
	{
		name: "parties",
		match: func(q, _, _ string) bool {
			return strings.Contains(q, "partido")
		},
		run: func(ctx context.Context, a *Assistant, _, _ string) (string, error) {
			rows, err := a.fetcher.VotesByOffice(ctx, config.OfficeCouncil, "",
				config.MunicipalYear, config.Round)
			if err != nil {
				return "", err
			}
			return FormatPartyReport(config.MunicipalYear, RankParties(rows, 10)), nil
		},
	},
	{
		name: "candidate-lookup",
		match: func(_, candidate, _ string) bool {
			return candidate != ""
		},
		run: func(ctx context.Context, a *Assistant, candidate, _ string) (string, error) {
			rows, err := a.fetcher.VotesByCandidate(ctx, candidate)
			if err != nil {
				return "", err
			}
			return FormatCandidateReport(GroupCandidateVotes(rows)), nil
		},
	},
	{
		name: "territorial",
		match: func(_, _, municipality string) bool {
			return municipality != ""
		},
		run: func(ctx context.Context, a *Assistant, _, municipality string) (string, error) {
			return a.territorial(ctx, municipality)
		},
	},
	{
		name: "summary",
		match: func(q, _, _ string) bool {
			return containsAny(q, "resumo", "panorama", "visão geral", "visao geral",
				"cenário", "cenario")
		},
		run: func(ctx context.Context, a *Assistant, _, _ string) (string, error) {
			return a.territorial(ctx, config.DefaultMunicipality)
		},
	},
}

func rankingIntent(q string) bool {
	return containsAny(q, "top", "mais votado", "mais votados", "ranking")
}

// orDefault substitutes the state capital when no municipality was
// extracted. Deliberate policy: a query with no location is read as a
// question about the capital.
func orDefault(municipality string) string {
	if municipality == "" {
		return config.DefaultMunicipality
	}
	return municipality
}

const helpText = `❓ *Não entendi a pergunta.* Alguns exemplos do que posso responder:

📊 Candidatos
  • "votos de <nome do candidato>"
  • "dados do candidato <nome>"

🏛️ Municípios
  • "panorama eleitoral de Porto Velho"
  • "resumo de Cacoal"

🗳️ Zonas
  • "votação por zona em Ji-Paraná"
  • "zonas prioritárias"
  • "mapa de força eleitoral de Vilhena"

🏆 Rankings
  • "top 10 prefeitos mais votados"
  • "vereadores mais votados em Ariquemes"
  • "deputados federais mais votados"
  • "partidos mais votados"

📈 Histórico
  • "comparar eleitorado 2020 e 2024"`
