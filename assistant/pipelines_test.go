package assistant

import (
	"testing"

	"electoral_site/models"
)

func voteRow(name, party, municipality string, office, votes, year, zone int) models.VoteRecord {
	return models.VoteRecord{
		CandidateName: name,
		Party:         party,
		Municipality:  municipality,
		OfficeCode:    office,
		OfficeName:    "Prefeito",
		Votes:         votes,
		Year:          year,
		Round:         1,
		Zone:          zone,
	}
}

func turnoutRow(municipality string, zone, eligible, turnout, abstention int) models.TurnoutRecord {
	return models.TurnoutRecord{
		Municipality: municipality,
		Zone:         zone,
		Year:         2024,
		Round:        1,
		Eligible:     eligible,
		Turnout:      turnout,
		Abstention:   abstention,
	}
}

func TestGroupCandidateVotes(t *testing.T) {
	rows := []models.VoteRecord{
		voteRow("A", "P1", "X", 11, 10, 2024, 1),
		voteRow("A", "P1", "Y", 11, 5, 2024, 2),
	}

	aggregates := GroupCandidateVotes(rows)
	if len(aggregates) != 1 {
		t.Fatalf("expected 1 aggregate, got %d", len(aggregates))
	}

	agg := aggregates[0]
	if agg.TotalVotes != 15 {
		t.Errorf("total votes = %d, want 15", agg.TotalVotes)
	}
	if agg.VotesByMunicipality["X"] != 10 || agg.VotesByMunicipality["Y"] != 5 {
		t.Errorf("votes by municipality = %v, want map[X:10 Y:5]", agg.VotesByMunicipality)
	}
	if agg.VotesByZone["X-Z1"] != 10 || agg.VotesByZone["Y-Z2"] != 5 {
		t.Errorf("votes by zone = %v, want map[X-Z1:10 Y-Z2:5]", agg.VotesByZone)
	}
}

func TestGroupCandidateVotesSplitsOfficeAndYear(t *testing.T) {
	rows := []models.VoteRecord{
		voteRow("A", "P1", "X", 11, 10, 2024, 1),
		voteRow("A", "P1", "X", 11, 8, 2020, 1),
	}
	rows[1].OfficeName = "Vereador"

	aggregates := GroupCandidateVotes(rows)
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 aggregates for distinct office/year, got %d", len(aggregates))
	}
	if aggregates[0].Year != 2024 {
		t.Errorf("most recent year first, got %d", aggregates[0].Year)
	}
}

func TestBuildTerritorialProfile(t *testing.T) {
	turnout := []models.TurnoutRecord{
		turnoutRow("X", 1, 1000, 800, 200),
		turnoutRow("X", 2, 500, 400, 100),
	}
	votes := []models.VoteRecord{
		voteRow("MAYOR A", "P1", "X", 11, 600, 2024, 1),
		voteRow("MAYOR B", "P2", "X", 11, 400, 2024, 1),
		voteRow("VOTO BRANCO", "#NULO#", "X", 11, 100, 2024, 1),
		voteRow("COUNCIL C", "P3", "X", 13, 150, 2024, 1),
	}

	profile := BuildTerritorialProfile("X", turnout, votes, 11, 13)
	if profile == nil {
		t.Fatal("expected profile, got nil")
	}
	if profile.Turnout.Eligible != 1500 || profile.Turnout.Turnout != 1200 {
		t.Errorf("turnout summary = %+v", profile.Turnout)
	}
	if profile.Turnout.ParticipationRate != "80,0" {
		t.Errorf("participation rate = %q, want 80,0", profile.Turnout.ParticipationRate)
	}
	if len(profile.TopMayors) != 2 || profile.TopMayors[0].Name != "MAYOR A" {
		t.Errorf("top mayors = %+v", profile.TopMayors)
	}
	if len(profile.TopCouncil) != 1 || profile.TopCouncil[0].Name != "COUNCIL C" {
		t.Errorf("top council = %+v", profile.TopCouncil)
	}
}

func TestBuildTerritorialProfileZeroEligible(t *testing.T) {
	turnout := []models.TurnoutRecord{turnoutRow("X", 1, 0, 0, 0)}

	profile := BuildTerritorialProfile("X", turnout, nil, 11, 13)
	if profile == nil {
		t.Fatal("expected profile, got nil")
	}
	if profile.Turnout.ParticipationRate != "0" {
		t.Errorf("participation rate = %q, want \"0\"", profile.Turnout.ParticipationRate)
	}
}

func TestBuildTerritorialProfileRequiresTurnout(t *testing.T) {
	votes := []models.VoteRecord{voteRow("MAYOR A", "P1", "X", 11, 600, 2024, 1)}
	if profile := BuildTerritorialProfile("X", nil, votes, 11, 13); profile != nil {
		t.Errorf("expected nil profile without turnout rows, got %+v", profile)
	}
}

func TestScorePriorityZonesTierPrecedence(t *testing.T) {
	rows := []models.TurnoutRecord{
		// Rule 1: large electorate AND participation below 75% must win
		// even though eligible > 30000 would also satisfy rule 3.
		turnoutRow("A", 1, 60000, 42000, 18000),
		// Rule 2: abstention above 28%.
		turnoutRow("B", 2, 20000, 14000, 6000),
		// Rule 3: significant electorate, healthy participation.
		turnoutRow("C", 3, 40000, 34000, 6000),
		// Rule 4: everything else.
		turnoutRow("D", 4, 10000, 9000, 1000),
	}

	zones := ScorePriorityZones(rows)
	if len(zones) != 4 {
		t.Fatalf("expected 4 zones, got %d", len(zones))
	}

	byZone := make(map[int]models.ZoneAggregate)
	for _, z := range zones {
		byZone[z.Zone] = z
	}

	if z := byZone[1]; z.Priority != models.PriorityHigh || z.Rationale != "grande eleitorado com participação abaixo da média" {
		t.Errorf("zone 1 = %q / %q", z.Priority, z.Rationale)
	}
	if z := byZone[2]; z.Priority != models.PriorityHigh || z.Rationale != "abstenção alta — potencial de mobilização" {
		t.Errorf("zone 2 = %q / %q", z.Priority, z.Rationale)
	}
	if z := byZone[3]; z.Priority != models.PriorityMediumHigh {
		t.Errorf("zone 3 = %q, want MÉDIA-ALTA", z.Priority)
	}
	if z := byZone[4]; z.Priority != models.PriorityMedium || z.Rationale != "" {
		t.Errorf("zone 4 = %q / %q", z.Priority, z.Rationale)
	}

	// Sorted by eligible descending, not by tier.
	if zones[0].Zone != 1 || zones[1].Zone != 3 || zones[2].Zone != 2 || zones[3].Zone != 4 {
		t.Errorf("zone order = %d %d %d %d", zones[0].Zone, zones[1].Zone, zones[2].Zone, zones[3].Zone)
	}
}

func TestScorePriorityZonesZeroEligible(t *testing.T) {
	zones := ScorePriorityZones([]models.TurnoutRecord{turnoutRow("A", 1, 0, 0, 0)})
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].ParticipationRate != "0" || zones[0].AbstentionRate != "0" {
		t.Errorf("rates = %q / %q, want \"0\" / \"0\"", zones[0].ParticipationRate, zones[0].AbstentionRate)
	}
}

func TestGroupZoneVotes(t *testing.T) {
	rows := []models.VoteRecord{
		voteRow("A", "P1", "X", 11, 100, 2024, 2),
		voteRow("B", "P2", "X", 11, 80, 2024, 2),
		voteRow("C", "P3", "X", 11, 60, 2024, 2),
		voteRow("D", "P4", "X", 11, 40, 2024, 2),
		voteRow("VOTO NULO", "#NULO#", "X", 11, 30, 2024, 2),
		voteRow("A", "P1", "X", 11, 50, 2024, 1),
	}

	zones := GroupZoneVotes(rows)
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zones))
	}
	if zones[0].Zone != 1 || zones[1].Zone != 2 {
		t.Errorf("zones out of order: %d, %d", zones[0].Zone, zones[1].Zone)
	}
	if zones[1].TotalVotes != 280 {
		t.Errorf("zone 2 total = %d, want 280 (placeholders excluded)", zones[1].TotalVotes)
	}
	if len(zones[1].Top) != 3 || zones[1].Top[0].Name != "A" {
		t.Errorf("zone 2 top = %+v", zones[1].Top)
	}
}

func TestBuildStrengthMapAdvantageSentinel(t *testing.T) {
	votes := []models.VoteRecord{
		voteRow("ONLY ONE", "P1", "X", 11, 500, 2024, 1),
	}

	zones := BuildStrengthMap(votes, nil)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	if zones[0].Advantage != "100" {
		t.Errorf("advantage = %q, want the exact sentinel \"100\"", zones[0].Advantage)
	}
	if zones[0].Dominance != "100,0" {
		t.Errorf("dominance = %q, want 100,0", zones[0].Dominance)
	}
}

func TestBuildStrengthMapMetrics(t *testing.T) {
	votes := []models.VoteRecord{
		voteRow("LEADER", "P1", "X", 11, 600, 2024, 1),
		voteRow("RUNNER", "P2", "X", 11, 400, 2024, 1),
	}
	turnout := []models.TurnoutRecord{
		turnoutRow("X", 1, 2000, 1500, 500),
	}

	zones := BuildStrengthMap(votes, turnout)
	if len(zones) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(zones))
	}
	z := zones[0]
	if z.Eligible != 2000 {
		t.Errorf("eligible = %d, want 2000", z.Eligible)
	}
	if z.Leader == nil || z.Leader.Name != "LEADER" {
		t.Fatalf("leader = %+v", z.Leader)
	}
	if z.Dominance != "60,0" {
		t.Errorf("dominance = %q, want 60,0", z.Dominance)
	}
	if z.Advantage != "20,0" {
		t.Errorf("advantage = %q, want 20,0", z.Advantage)
	}
}

func TestRankCandidates(t *testing.T) {
	rows := []models.VoteRecord{
		voteRow("A", "P1", "X", 11, 100, 2024, 1),
		voteRow("A", "P1", "X", 11, 50, 2024, 2),
		voteRow("B", "P2", "Y", 11, 120, 2024, 1),
		voteRow("VOTO BRANCO", "#NULO#", "X", 11, 999, 2024, 1),
	}

	ranking := RankCandidates(rows, false, 10)
	if len(ranking) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranking))
	}
	if ranking[0].Name != "A" || ranking[0].Votes != 150 {
		t.Errorf("first = %+v, want A with 150", ranking[0])
	}
	if ranking[0].Municipality != "X" {
		t.Errorf("municipality = %q, want X", ranking[0].Municipality)
	}
}

func TestRankCandidatesTruncates(t *testing.T) {
	var rows []models.VoteRecord
	for i := 0; i < 12; i++ {
		rows = append(rows, voteRow(string(rune('A'+i)), "P", "X", 11, 100-i, 2024, 1))
	}

	if got := len(RankCandidates(rows, false, 10)); got != 10 {
		t.Errorf("expected 10 entries after truncation, got %d", got)
	}
}

func TestRankParties(t *testing.T) {
	rows := []models.VoteRecord{
		voteRow("A", "P1", "X", 13, 100, 2024, 1),
		voteRow("B", "P1", "X", 13, 50, 2024, 1),
		voteRow("C", "P2", "X", 13, 120, 2024, 1),
		voteRow("VOTO NULO", "#NULO#", "X", 13, 999, 2024, 1),
	}

	parties := RankParties(rows, 10)
	if len(parties) != 2 {
		t.Fatalf("expected 2 parties, got %d", len(parties))
	}
	if parties[0].Party != "P1" || parties[0].Votes != 150 {
		t.Errorf("first = %+v, want P1 with 150", parties[0])
	}
}

func TestBuildSnapshot(t *testing.T) {
	snap := BuildSnapshot(2020, []models.TurnoutRecord{
		turnoutRow("X", 1, 1000, 800, 200),
		turnoutRow("Y", 2, 500, 300, 200),
	})
	if snap.Year != 2020 || snap.Eligible != 1500 || snap.Turnout != 1100 || snap.Abstention != 400 {
		t.Errorf("snapshot = %+v", snap)
	}
}
