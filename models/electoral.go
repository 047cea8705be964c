package models

// VoteRecord is one raw tally row from the vote_records table.
type VoteRecord struct {
	CandidateName string `json:"candidate_name"`
	Party         string `json:"party"`
	Municipality  string `json:"municipality"`
	OfficeCode    int    `json:"office_code"`
	OfficeName    string `json:"office_name"`
	Votes         int    `json:"votes"`
	Year          int    `json:"year"`
	Round         int    `json:"round"`
	Zone          int    `json:"zone"`
	Section       int    `json:"section"`
	VoteType      string `json:"vote_type"`
}

// TurnoutRecord is one per-zone turnout row from the turnout_records table.
type TurnoutRecord struct {
	Municipality string `json:"municipality"`
	Zone         int    `json:"zone"`
	Year         int    `json:"year"`
	Round        int    `json:"round"`
	Eligible     int    `json:"eligible"`
	Turnout      int    `json:"turnout"`
	Abstention   int    `json:"abstention"`
}

// CandidateAggregate summarizes all votes for one (candidate, office, year)
// combination. A candidate that ran for more than one office or in more
// than one year produces one aggregate per combination.
type CandidateAggregate struct {
	Name                string         `json:"name"`
	Party               string         `json:"party"`
	Office              string         `json:"office"`
	Year                int            `json:"year"`
	TotalVotes          int            `json:"total_votes"`
	VotesByMunicipality map[string]int `json:"votes_by_municipality"`
	VotesByZone         map[string]int `json:"votes_by_zone"`
}

// CandidateTotal is one line of a ranking or per-zone candidate list.
type CandidateTotal struct {
	Name         string `json:"name"`
	Party        string `json:"party"`
	Municipality string `json:"municipality,omitempty"`
	Votes        int    `json:"votes"`
}

// TurnoutSummary sums turnout rows for one municipality or the whole state.
type TurnoutSummary struct {
	Eligible          int    `json:"eligible"`
	Turnout           int    `json:"turnout"`
	Abstention        int    `json:"abstention"`
	ParticipationRate string `json:"participation_rate"`
}

// TerritorialProfile is the full electoral picture of one municipality.
type TerritorialProfile struct {
	Municipality string           `json:"municipality"`
	Turnout      TurnoutSummary   `json:"turnout"`
	TopMayors    []CandidateTotal `json:"top_mayors"`
	TopCouncil   []CandidateTotal `json:"top_council"`
}

// ZoneVotes is the per-zone candidate breakdown used by zone analysis.
type ZoneVotes struct {
	Zone       int              `json:"zone"`
	TotalVotes int              `json:"total_votes"`
	Top        []CandidateTotal `json:"top"`
}

// ZoneAggregate is one scored zone from the priority pipeline.
type ZoneAggregate struct {
	Zone              int      `json:"zone"`
	Eligible          int      `json:"eligible"`
	Turnout           int      `json:"turnout"`
	Abstention        int      `json:"abstention"`
	ParticipationRate string   `json:"participation_rate"`
	AbstentionRate    string   `json:"abstention_rate"`
	Priority          string   `json:"priority"`
	Rationale         string   `json:"rationale"`
	Municipalities    []string `json:"municipalities"`
}

// Priority tiers, in decreasing order of urgency.
const (
	PriorityHigh       = "ALTA"
	PriorityMediumHigh = "MÉDIA-ALTA"
	PriorityMedium     = "MÉDIA"
)

// ZoneStrength is one zone of the electoral-strength map: who leads, by
// how much, against how large an electorate.
type ZoneStrength struct {
	Zone       int              `json:"zone"`
	Eligible   int              `json:"eligible"`
	Turnout    int              `json:"turnout"`
	TotalVotes int              `json:"total_votes"`
	Leader     *CandidateTotal  `json:"leader,omitempty"`
	Dominance  string           `json:"dominance"`
	Advantage  string           `json:"advantage"`
	Top        []CandidateTotal `json:"top"`
}

// HistoricalSnapshot sums turnout figures for one election year.
type HistoricalSnapshot struct {
	Year       int `json:"year"`
	Eligible   int `json:"eligible"`
	Turnout    int `json:"turnout"`
	Abstention int `json:"abstention"`
}

// PartyTotal is one line of the party ranking.
type PartyTotal struct {
	Party string `json:"party"`
	Votes int    `json:"votes"`
}

// Conversation is one stored assistant exchange.
type Conversation struct {
	SessionID string `bson:"session_id" json:"session_id"`
	Question  string `bson:"question" json:"question"`
	Answer    string `bson:"answer" json:"answer"`
	CreatedAt int64  `bson:"created_at" json:"created_at"`
}
