package assistant

import (
	"context"
	"log"
	"strings"

	"electoral_site/config"
	"electoral_site/models"
)

// Assistant is the natural-language electoral query engine: free text in,
// formatted report out. It holds no per-query state; every call
// re-extracts entities and re-fetches rows.
type Assistant struct {
	fetcher Fetcher
}

func New(fetcher Fetcher) *Assistant {
	return &Assistant{fetcher: fetcher}
}

// fetchErrorMessage is the single user-facing string for any data-fetch
// failure. The underlying error is logged, never shown.
const fetchErrorMessage = "⚠️ Não consegui consultar os dados eleitorais agora. Tente novamente em instantes."

// Answer resolves a free-text question into a formatted report. "No data
// found" is never an error: the router falls through to later intents and
// ultimately to the static help text.
func (a *Assistant) Answer(ctx context.Context, query string) string {
	lower := strings.ToLower(query)
	candidate := ExtractCandidateName(query)
	municipality := ExtractMunicipalityName(query)

	for _, rule := range intentRules {
		if !rule.match(lower, candidate, municipality) {
			continue
		}
		report, err := rule.run(ctx, a, candidate, municipality)
		if err != nil {
			log.Printf("[Assistant] rule %s failed for %q: %v", rule.name, query, err)
			return fetchErrorMessage
		}
		if report != "" {
			return report
		}
	}

	return helpText
}

func (a *Assistant) ranking(ctx context.Context, title string, office int, municipality string, year, n int) (string, error) {
	rows, err := a.fetcher.VotesByOffice(ctx, office, municipality, year, config.Round)
	if err != nil {
		return "", err
	}
	return FormatRankingReport(title, year, RankCandidates(rows, false, n)), nil
}

func (a *Assistant) territorial(ctx context.Context, municipality string) (string, error) {
	turnout, err := a.fetcher.TurnoutByMunicipality(ctx, municipality, config.MunicipalYear, config.Round)
	if err != nil {
		return "", err
	}
	votes, err := a.fetcher.VotesByMunicipality(ctx, municipality,
		[]int{config.OfficeMayor, config.OfficeCouncil}, config.MunicipalYear, config.Round)
	if err != nil {
		return "", err
	}
	profile := BuildTerritorialProfile(municipality, turnout, votes,
		config.OfficeMayor, config.OfficeCouncil)
	return FormatTerritorialReport(profile), nil
}

// Municipalities exposes the gazetteer in canonical casing for the
// dashboard's location dropdowns.
func Municipalities() []string {
	out := make([]string, len(municipalities))
	copy(out, municipalities)
	return out
}

// SummarizeTurnout folds turnout rows into the shape the dashboard's
// turnout endpoint serves.
func SummarizeTurnout(rows []models.TurnoutRecord) models.TurnoutSummary {
	var s models.TurnoutSummary
	for _, r := range rows {
		s.Eligible += r.Eligible
		s.Turnout += r.Turnout
		s.Abstention += r.Abstention
	}
	s.ParticipationRate = ratePercent(s.Turnout, s.Eligible)
	return s
}
