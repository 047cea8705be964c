package assistant

import (
	"fmt"
	"sort"
	"strings"

	"electoral_site/models"
)

// Report rendering. Everything here is deterministic: fixed section
// order, pt-BR number formatting ("." thousands, "," decimal), map
// contents emitted in sorted order. The same structured result always
// renders to byte-identical text.

// formatInt renders an integer with "." thousands separators.
func formatInt(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// formatDecimal renders one decimal place with a decimal comma.
func formatDecimal(v float64) string {
	return strings.Replace(fmt.Sprintf("%.1f", v), ".", ",", 1)
}

// formatSigned is formatDecimal with an explicit "+" on positive values.
func formatSigned(v float64) string {
	if v > 0 {
		return "+" + formatDecimal(v)
	}
	return formatDecimal(v)
}

// ratePercent renders part/total as a one-decimal percentage string,
// "0" when total is zero.
func ratePercent(part, total int) string {
	if total == 0 {
		return "0"
	}
	return formatDecimal(float64(part) / float64(total) * 100)
}

// sortedMapEntries flattens a votes map into (key, votes) pairs ordered
// by votes descending, key ascending on ties.
type mapEntry struct {
	Key   string
	Votes int
}

func sortedMapEntries(m map[string]int) []mapEntry {
	entries := make([]mapEntry, 0, len(m))
	for k, v := range m {
		entries = append(entries, mapEntry{Key: k, Votes: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Votes != entries[j].Votes {
			return entries[i].Votes > entries[j].Votes
		}
		return entries[i].Key < entries[j].Key
	})
	return entries
}

func FormatCandidateReport(aggregates []models.CandidateAggregate) string {
	if len(aggregates) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s*\n", aggregates[0].Name)

	for _, agg := range aggregates {
		fmt.Fprintf(&b, "\n🗳️ %s — %d (%s)\n", agg.Office, agg.Year, agg.Party)
		fmt.Fprintf(&b, "Total de votos: %s\n", formatInt(agg.TotalVotes))

		b.WriteString("\nPor município:\n")
		for i, e := range sortedMapEntries(agg.VotesByMunicipality) {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, e.Key, formatInt(e.Votes))
		}

		b.WriteString("\nPor zona:\n")
		for i, e := range sortedMapEntries(agg.VotesByZone) {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "  %d. %s: %s\n", i+1, e.Key, formatInt(e.Votes))
		}
	}

	return b.String()
}

func FormatTerritorialReport(p *models.TerritorialProfile) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏛️ *PANORAMA ELEITORAL — %s*\n\n", p.Municipality)
	b.WriteString("Eleitorado\n")
	fmt.Fprintf(&b, "  Aptos: %s\n", formatInt(p.Turnout.Eligible))
	fmt.Fprintf(&b, "  Comparecimento: %s\n", formatInt(p.Turnout.Turnout))
	fmt.Fprintf(&b, "  Abstenções: %s\n", formatInt(p.Turnout.Abstention))
	fmt.Fprintf(&b, "  Participação: %s%%\n", p.Turnout.ParticipationRate)

	if len(p.TopMayors) > 0 {
		b.WriteString("\nPrefeito — mais votados\n")
		writeTotals(&b, p.TopMayors)
	}
	if len(p.TopCouncil) > 0 {
		b.WriteString("\nVereador — mais votados\n")
		writeTotals(&b, p.TopCouncil)
	}

	return b.String()
}

func FormatZoneReport(municipality string, zones []models.ZoneVotes) string {
	if len(zones) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗳️ *VOTAÇÃO POR ZONA — %s*\n", municipality)
	for _, z := range zones {
		fmt.Fprintf(&b, "\nZona %d — %s votos\n", z.Zone, formatInt(z.TotalVotes))
		writeTotals(&b, z.Top)
	}
	return b.String()
}

func FormatPriorityReport(zones []models.ZoneAggregate) string {
	if len(zones) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("🎯 *ZONAS PRIORITÁRIAS*\n")
	for _, z := range zones {
		fmt.Fprintf(&b, "\nZona %d — prioridade %s\n", z.Zone, z.Priority)
		fmt.Fprintf(&b, "  Aptos: %s | Participação: %s%% | Abstenção: %s%%\n",
			formatInt(z.Eligible), z.ParticipationRate, z.AbstentionRate)
		if len(z.Municipalities) > 0 {
			fmt.Fprintf(&b, "  Municípios: %s\n", strings.Join(z.Municipalities, ", "))
		}
		if z.Rationale != "" {
			fmt.Fprintf(&b, "  Motivo: %s\n", z.Rationale)
		}
	}
	return b.String()
}

func FormatStrengthReport(municipality string, zones []models.ZoneStrength) string {
	if len(zones) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🗺️ *MAPA DE FORÇA ELEITORAL — %s*\n", municipality)
	for _, z := range zones {
		fmt.Fprintf(&b, "\nZona %d — %s aptos\n", z.Zone, formatInt(z.Eligible))
		if z.Leader != nil {
			fmt.Fprintf(&b, "  Líder: %s (%s) com %s votos\n",
				z.Leader.Name, z.Leader.Party, formatInt(z.Leader.Votes))
		} else {
			b.WriteString("  Líder: —\n")
		}
		fmt.Fprintf(&b, "  Domínio: %s%% | Vantagem: %s%%\n", z.Dominance, z.Advantage)
	}
	return b.String()
}

// FormatHistoricalReport renders the two-year comparison. The growth and
// delta derivations live here, on the caller side of the pipeline, and
// this is where the zero-eligible guard for the earlier year is applied.
func FormatHistoricalReport(municipality string, earlier, later models.HistoricalSnapshot) string {
	scope := municipality
	if scope == "" {
		scope = "RONDÔNIA"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📈 *COMPARATIVO %d × %d — %s*\n\n", earlier.Year, later.Year, scope)
	writeSnapshot(&b, earlier)
	writeSnapshot(&b, later)

	growth := 0.0
	if earlier.Eligible > 0 {
		growth = float64(later.Eligible-earlier.Eligible) / float64(earlier.Eligible) * 100
	}
	delta := percentOf(later.Turnout, later.Eligible) - percentOf(earlier.Turnout, earlier.Eligible)

	fmt.Fprintf(&b, "\nCrescimento do eleitorado: %s%%\n", formatSigned(growth))
	fmt.Fprintf(&b, "Variação da participação: %s p.p.\n", formatSigned(delta))
	return b.String()
}

func writeSnapshot(b *strings.Builder, s models.HistoricalSnapshot) {
	fmt.Fprintf(b, "%d: aptos %s | comparecimento %s | abstenção %s | participação %s%%\n",
		s.Year, formatInt(s.Eligible), formatInt(s.Turnout), formatInt(s.Abstention),
		ratePercent(s.Turnout, s.Eligible))
}

func FormatRankingReport(title string, year int, entries []models.CandidateTotal) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 *%s — %d*\n\n", title, year)
	for i, e := range entries {
		if e.Municipality != "" {
			fmt.Fprintf(&b, "%d. %s (%s) — %s: %s votos\n",
				i+1, e.Name, e.Party, e.Municipality, formatInt(e.Votes))
		} else {
			fmt.Fprintf(&b, "%d. %s (%s): %s votos\n", i+1, e.Name, e.Party, formatInt(e.Votes))
		}
	}
	return b.String()
}

func FormatPartyReport(year int, parties []models.PartyTotal) string {
	if len(parties) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎉 *PARTIDOS MAIS VOTADOS — %d*\n\n", year)
	for i, p := range parties {
		fmt.Fprintf(&b, "%d. %s: %s votos\n", i+1, p.Party, formatInt(p.Votes))
	}
	return b.String()
}

func writeTotals(b *strings.Builder, totals []models.CandidateTotal) {
	for i, t := range totals {
		fmt.Fprintf(b, "  %d. %s (%s): %s\n", i+1, t.Name, t.Party, formatInt(t.Votes))
	}
}
