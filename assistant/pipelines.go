package assistant

import (
	"fmt"
	"sort"

	"electoral_site/models"
)

// Placeholder rows the tally tables carry for blank and null ballots,
// and the party marker used on those rows.
const (
	blankMarker = "VOTO BRANCO"
	nullMarker  = "VOTO NULO"
	nullParty   = "#NULO#"
)

func isPlaceholder(name string) bool {
	return name == blankMarker || name == nullMarker
}

// All pipelines below are pure folds over fetched rows: group into
// key→aggregate maps, derive metrics, sort, truncate. They never go back
// to the database and never mutate their inputs.

// GroupCandidateVotes builds one aggregate per (candidate, office, year)
// combination found in the rows. A candidate active in several offices or
// years yields several aggregates.
func GroupCandidateVotes(rows []models.VoteRecord) []models.CandidateAggregate {
	byKey := make(map[string]*models.CandidateAggregate)
	var order []string

	for _, r := range rows {
		key := fmt.Sprintf("%s|%s|%d", r.CandidateName, r.OfficeName, r.Year)
		agg, ok := byKey[key]
		if !ok {
			agg = &models.CandidateAggregate{
				Name:                r.CandidateName,
				Party:               r.Party,
				Office:              r.OfficeName,
				Year:                r.Year,
				VotesByMunicipality: make(map[string]int),
				VotesByZone:         make(map[string]int),
			}
			byKey[key] = agg
			order = append(order, key)
		}
		agg.TotalVotes += r.Votes
		agg.VotesByMunicipality[r.Municipality] += r.Votes
		agg.VotesByZone[fmt.Sprintf("%s-Z%d", r.Municipality, r.Zone)] += r.Votes
	}

	result := make([]models.CandidateAggregate, 0, len(order))
	for _, key := range order {
		result = append(result, *byKey[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		if result[i].TotalVotes != result[j].TotalVotes {
			return result[i].TotalVotes > result[j].TotalVotes
		}
		return result[i].Office < result[j].Office
	})
	return result
}

// BuildTerritorialProfile assembles the electoral picture of one
// municipality: turnout summary plus mayoral and council rankings.
// Returns nil when there are no turnout rows — candidate rows alone do
// not make a profile.
func BuildTerritorialProfile(municipality string, turnout []models.TurnoutRecord, votes []models.VoteRecord, mayorOffice, councilOffice int) *models.TerritorialProfile {
	if len(turnout) == 0 {
		return nil
	}

	profile := &models.TerritorialProfile{Municipality: municipality}
	for _, t := range turnout {
		profile.Turnout.Eligible += t.Eligible
		profile.Turnout.Turnout += t.Turnout
		profile.Turnout.Abstention += t.Abstention
	}
	profile.Turnout.ParticipationRate = ratePercent(profile.Turnout.Turnout, profile.Turnout.Eligible)

	mayors := make(map[string]*models.CandidateTotal)
	council := make(map[string]*models.CandidateTotal)
	for _, v := range votes {
		if isPlaceholder(v.CandidateName) {
			continue
		}
		var bucket map[string]*models.CandidateTotal
		switch v.OfficeCode {
		case mayorOffice:
			bucket = mayors
		case councilOffice:
			bucket = council
		default:
			continue
		}
		entry, ok := bucket[v.CandidateName]
		if !ok {
			entry = &models.CandidateTotal{Name: v.CandidateName, Party: v.Party}
			bucket[v.CandidateName] = entry
		}
		entry.Votes += v.Votes
	}

	profile.TopMayors = sortTotals(mayors, 5)
	profile.TopCouncil = sortTotals(council, 10)
	return profile
}

// GroupZoneVotes breaks mayoral votes down per electoral zone, keeping
// the top 3 candidates of each zone. Blank/null placeholders are left out
// of both the candidate lists and the zone totals.
func GroupZoneVotes(rows []models.VoteRecord) []models.ZoneVotes {
	type zoneAcc struct {
		total      int
		candidates map[string]*models.CandidateTotal
	}
	byZone := make(map[int]*zoneAcc)

	for _, r := range rows {
		if isPlaceholder(r.CandidateName) {
			continue
		}
		acc, ok := byZone[r.Zone]
		if !ok {
			acc = &zoneAcc{candidates: make(map[string]*models.CandidateTotal)}
			byZone[r.Zone] = acc
		}
		acc.total += r.Votes
		entry, ok := acc.candidates[r.CandidateName]
		if !ok {
			entry = &models.CandidateTotal{Name: r.CandidateName, Party: r.Party}
			acc.candidates[r.CandidateName] = entry
		}
		entry.Votes += r.Votes
	}

	result := make([]models.ZoneVotes, 0, len(byZone))
	for zone, acc := range byZone {
		result = append(result, models.ZoneVotes{
			Zone:       zone,
			TotalVotes: acc.total,
			Top:        sortTotals(acc.candidates, 3),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Zone < result[j].Zone })
	return result
}

// ScorePriorityZones classifies statewide zones into priority tiers.
// Tier rules are evaluated in a fixed order; the first match wins:
//  1. eligible > 50000 and participation below 75%  → HIGH
//  2. abstention rate above 28%                     → HIGH
//  3. eligible > 30000                              → MEDIUM-HIGH
//  4. everything else                               → MEDIUM
func ScorePriorityZones(rows []models.TurnoutRecord) []models.ZoneAggregate {
	type zoneAcc struct {
		agg            models.ZoneAggregate
		municipalities map[string]bool
	}
	byZone := make(map[int]*zoneAcc)

	for _, r := range rows {
		acc, ok := byZone[r.Zone]
		if !ok {
			acc = &zoneAcc{municipalities: make(map[string]bool)}
			acc.agg.Zone = r.Zone
			byZone[r.Zone] = acc
		}
		acc.agg.Eligible += r.Eligible
		acc.agg.Turnout += r.Turnout
		acc.agg.Abstention += r.Abstention
		acc.municipalities[r.Municipality] = true
	}

	result := make([]models.ZoneAggregate, 0, len(byZone))
	for _, acc := range byZone {
		z := acc.agg
		participation := percentOf(z.Turnout, z.Eligible)
		abstention := percentOf(z.Abstention, z.Eligible)
		z.ParticipationRate = ratePercent(z.Turnout, z.Eligible)
		z.AbstentionRate = ratePercent(z.Abstention, z.Eligible)

		switch {
		case z.Eligible > 50000 && participation < 75:
			z.Priority = models.PriorityHigh
			z.Rationale = "grande eleitorado com participação abaixo da média"
		case abstention > 28:
			z.Priority = models.PriorityHigh
			z.Rationale = "abstenção alta — potencial de mobilização"
		case z.Eligible > 30000:
			z.Priority = models.PriorityMediumHigh
			z.Rationale = "eleitorado significativo"
		default:
			z.Priority = models.PriorityMedium
		}

		for m := range acc.municipalities {
			z.Municipalities = append(z.Municipalities, m)
		}
		sort.Strings(z.Municipalities)
		result = append(result, z)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Eligible != result[j].Eligible {
			return result[i].Eligible > result[j].Eligible
		}
		return result[i].Zone < result[j].Zone
	})
	return result
}

// BuildStrengthMap merges per-zone mayoral votes with per-zone turnout to
// measure where each candidate dominates. Dominance is the leader's share
// of zone votes; advantage is the leader/runner-up gap. A zone with a
// single candidate reports advantage "100".
func BuildStrengthMap(votes []models.VoteRecord, turnout []models.TurnoutRecord) []models.ZoneStrength {
	zones := GroupZoneVotes(votes)
	if len(zones) == 0 {
		return nil
	}

	eligibleByZone := make(map[int]int)
	turnoutByZone := make(map[int]int)
	for _, t := range turnout {
		eligibleByZone[t.Zone] += t.Eligible
		turnoutByZone[t.Zone] += t.Turnout
	}

	result := make([]models.ZoneStrength, 0, len(zones))
	for _, z := range zones {
		s := models.ZoneStrength{
			Zone:       z.Zone,
			Eligible:   eligibleByZone[z.Zone],
			Turnout:    turnoutByZone[z.Zone],
			TotalVotes: z.TotalVotes,
			Top:        z.Top,
		}
		s.Dominance = "0"
		s.Advantage = "0"
		if len(z.Top) > 0 {
			leader := z.Top[0]
			s.Leader = &leader
			if z.TotalVotes > 0 {
				s.Dominance = formatDecimal(float64(leader.Votes) / float64(z.TotalVotes) * 100)
			}
			if len(z.Top) < 2 {
				s.Advantage = "100"
			} else if z.TotalVotes > 0 {
				s.Advantage = formatDecimal(float64(leader.Votes-z.Top[1].Votes) / float64(z.TotalVotes) * 100)
			}
		}
		result = append(result, s)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Eligible != result[j].Eligible {
			return result[i].Eligible > result[j].Eligible
		}
		return result[i].Zone < result[j].Zone
	})
	return result
}

// BuildSnapshot sums turnout rows into the per-year figures used by the
// historical comparison.
func BuildSnapshot(year int, rows []models.TurnoutRecord) models.HistoricalSnapshot {
	snap := models.HistoricalSnapshot{Year: year}
	for _, r := range rows {
		snap.Eligible += r.Eligible
		snap.Turnout += r.Turnout
		snap.Abstention += r.Abstention
	}
	return snap
}

// RankCandidates produces a top-N ranking. Candidates are keyed by name
// plus municipality (so the same name running in two cities ranks twice)
// unless byName collapses the grouping, as for statewide offices.
func RankCandidates(rows []models.VoteRecord, byName bool, n int) []models.CandidateTotal {
	byKey := make(map[string]*models.CandidateTotal)
	for _, r := range rows {
		if isPlaceholder(r.CandidateName) {
			continue
		}
		key := r.CandidateName
		if !byName {
			key = r.CandidateName + "|" + r.Municipality
		}
		entry, ok := byKey[key]
		if !ok {
			entry = &models.CandidateTotal{Name: r.CandidateName, Party: r.Party}
			if !byName {
				entry.Municipality = r.Municipality
			}
			byKey[key] = entry
		}
		entry.Votes += r.Votes
	}
	return sortTotals(byKey, n)
}

// RankParties sums votes per party acronym, leaving out the null-party
// marker carried by blank/null rows.
func RankParties(rows []models.VoteRecord, n int) []models.PartyTotal {
	byParty := make(map[string]int)
	for _, r := range rows {
		if r.Party == nullParty || isPlaceholder(r.CandidateName) {
			continue
		}
		byParty[r.Party] += r.Votes
	}

	result := make([]models.PartyTotal, 0, len(byParty))
	for party, votes := range byParty {
		result = append(result, models.PartyTotal{Party: party, Votes: votes})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		return result[i].Party < result[j].Party
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

func sortTotals(m map[string]*models.CandidateTotal, n int) []models.CandidateTotal {
	result := make([]models.CandidateTotal, 0, len(m))
	for _, entry := range m {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Votes != result[j].Votes {
			return result[i].Votes > result[j].Votes
		}
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].Municipality < result[j].Municipality
	})
	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}

func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
