package assistant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"electoral_site/config"
	"electoral_site/models"
)

// Fetcher is the boundary toward the remote electoral tables. Each method
// requests one shaped slice of raw rows; pipelines never touch SQL.
type Fetcher interface {
	VotesByCandidate(ctx context.Context, name string) ([]models.VoteRecord, error)
	TurnoutByMunicipality(ctx context.Context, municipality string, year, round int) ([]models.TurnoutRecord, error)
	VotesByMunicipality(ctx context.Context, municipality string, offices []int, year, round int) ([]models.VoteRecord, error)
	VotesByZone(ctx context.Context, municipality string, office, year, round, limit int) ([]models.VoteRecord, error)
	TopTurnoutZones(ctx context.Context, year, round int) ([]models.TurnoutRecord, error)
	TurnoutByYear(ctx context.Context, municipality string, year int) ([]models.TurnoutRecord, error)
	VotesByOffice(ctx context.Context, office int, municipality string, year, round int) ([]models.VoteRecord, error)
}

// Store implements Fetcher over PostgreSQL.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const voteColumns = `candidate_name, party, municipality, office_code, office_name, votes, year, round, zone, section, vote_type`

const turnoutColumns = `municipality, zone, year, round, eligible, turnout, abstention`

func (s *Store) VotesByCandidate(ctx context.Context, name string) ([]models.VoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+voteColumns+`
		FROM vote_records
		WHERE candidate_name ILIKE '%' || $1 || '%'
		ORDER BY votes DESC
		LIMIT $2`,
		name, config.CapCandidate)
	if err != nil {
		return nil, fmt.Errorf("querying votes for candidate %q: %v", name, err)
	}
	defer rows.Close()

	return scanVoteRows(rows)
}

func (s *Store) TurnoutByMunicipality(ctx context.Context, municipality string, year, round int) ([]models.TurnoutRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+turnoutColumns+`
		FROM turnout_records
		WHERE municipality ILIKE '%' || $1 || '%' AND year = $2 AND round = $3
		ORDER BY zone
		LIMIT $4`,
		municipality, year, round, config.CapTurnout)
	if err != nil {
		return nil, fmt.Errorf("querying turnout for %q: %v", municipality, err)
	}
	defer rows.Close()

	return scanTurnoutRows(rows)
}

func (s *Store) VotesByMunicipality(ctx context.Context, municipality string, offices []int, year, round int) ([]models.VoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+voteColumns+`
		FROM vote_records
		WHERE municipality ILIKE '%' || $1 || '%'
		  AND office_code = ANY($2)
		  AND year = $3 AND round = $4
		ORDER BY votes DESC
		LIMIT $5`,
		municipality, pq.Array(offices), year, round, config.CapTerritorial)
	if err != nil {
		return nil, fmt.Errorf("querying votes for %q: %v", municipality, err)
	}
	defer rows.Close()

	return scanVoteRows(rows)
}

func (s *Store) VotesByZone(ctx context.Context, municipality string, office, year, round, limit int) ([]models.VoteRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+voteColumns+`
		FROM vote_records
		WHERE municipality ILIKE '%' || $1 || '%'
		  AND office_code = $2
		  AND year = $3 AND round = $4
		ORDER BY zone, votes DESC
		LIMIT $5`,
		municipality, office, year, round, limit)
	if err != nil {
		return nil, fmt.Errorf("querying zone votes for %q: %v", municipality, err)
	}
	defer rows.Close()

	return scanVoteRows(rows)
}

// TopTurnoutZones fetches the largest turnout rows statewide. The cap
// means smaller zones may not be scored at all; that sampling bound is
// part of the priority pipeline's contract.
func (s *Store) TopTurnoutZones(ctx context.Context, year, round int) ([]models.TurnoutRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+turnoutColumns+`
		FROM turnout_records
		WHERE year = $1 AND round = $2
		ORDER BY eligible DESC
		LIMIT $3`,
		year, round, config.CapPriority)
	if err != nil {
		return nil, fmt.Errorf("querying top turnout zones: %v", err)
	}
	defer rows.Close()

	return scanTurnoutRows(rows)
}

func (s *Store) TurnoutByYear(ctx context.Context, municipality string, year int) ([]models.TurnoutRecord, error) {
	query := `
		SELECT ` + turnoutColumns + `
		FROM turnout_records
		WHERE year = $1 AND round = $2`
	args := []interface{}{year, config.Round}
	if municipality != "" {
		query += ` AND municipality ILIKE '%' || $3 || '%'`
		args = append(args, municipality)
	}
	query += ` LIMIT ` + fmt.Sprintf("%d", config.CapTurnout)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying turnout for year %d: %v", year, err)
	}
	defer rows.Close()

	return scanTurnoutRows(rows)
}

func (s *Store) VotesByOffice(ctx context.Context, office int, municipality string, year, round int) ([]models.VoteRecord, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM vote_records
		WHERE office_code = $1 AND year = $2 AND round = $3`
	args := []interface{}{office, year, round}
	if municipality != "" {
		query += ` AND municipality ILIKE '%' || $4 || '%'`
		args = append(args, municipality)
	}
	query += ` ORDER BY votes DESC LIMIT ` + fmt.Sprintf("%d", config.CapRanking)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying votes for office %d: %v", office, err)
	}
	defer rows.Close()

	return scanVoteRows(rows)
}

func scanVoteRows(rows *sql.Rows) ([]models.VoteRecord, error) {
	var records []models.VoteRecord
	for rows.Next() {
		var r models.VoteRecord
		if err := rows.Scan(
			&r.CandidateName,
			&r.Party,
			&r.Municipality,
			&r.OfficeCode,
			&r.OfficeName,
			&r.Votes,
			&r.Year,
			&r.Round,
			&r.Zone,
			&r.Section,
			&r.VoteType,
		); err != nil {
			return nil, fmt.Errorf("scanning vote row: %v", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func scanTurnoutRows(rows *sql.Rows) ([]models.TurnoutRecord, error) {
	var records []models.TurnoutRecord
	for rows.Next() {
		var r models.TurnoutRecord
		if err := rows.Scan(
			&r.Municipality,
			&r.Zone,
			&r.Year,
			&r.Round,
			&r.Eligible,
			&r.Turnout,
			&r.Abstention,
		); err != nil {
			return nil, fmt.Errorf("scanning turnout row: %v", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
