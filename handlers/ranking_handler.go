package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"electoral_site/assistant"
	"electoral_site/config"
	"electoral_site/models"
)

// Store is the shared data access layer for the dashboard read endpoints.
// Wired in main after the database is up.
var Store *assistant.Store

// officeParams maps the URL office segment to its TSE code, election year
// and ranking size.
var officeParams = map[string]struct {
	Office int
	Year   int
	TopN   int
}{
	"prefeitos":           {config.OfficeMayor, config.MunicipalYear, 10},
	"vereadores":          {config.OfficeCouncil, config.MunicipalYear, 15},
	"deputados-federais":  {config.OfficeFederalDep, config.GeneralYear, 10},
	"deputados-estaduais": {config.OfficeStateDep, config.GeneralYear, 10},
	"governadores":        {config.OfficeGovernor, config.GeneralYear, 10},
}

type RankingResponse struct {
	Office       string                  `json:"office"`
	Year         int                     `json:"year"`
	Municipality string                  `json:"municipality,omitempty"`
	Entries      []models.CandidateTotal `json:"entries"`
}

// GetRanking serves the top-N ranking for one office, optionally filtered
// by municipality. Responses are cached for a few minutes; the assistant
// path does not go through this handler or its cache.
func GetRanking(w http.ResponseWriter, r *http.Request) {
	officeKey := mux.Vars(r)["office"]
	params, ok := officeParams[officeKey]
	if !ok {
		http.Error(w, "Unknown office", http.StatusNotFound)
		return
	}

	municipality := r.URL.Query().Get("municipio")

	cacheKey := config.GetCacheKey("ranking", officeKey, municipality)
	if cached, found := config.RankingCache.Get(cacheKey); found {
		writeJSONCached(w, cached)
		return
	}

	rows, err := Store.VotesByOffice(r.Context(), params.Office, municipality, params.Year, config.Round)
	if err != nil {
		log.Printf("Error fetching ranking for %s: %v", officeKey, err)
		http.Error(w, "Error fetching ranking", http.StatusInternalServerError)
		return
	}

	byName := params.Office == config.OfficeGovernor
	response := RankingResponse{
		Office:       officeKey,
		Year:         params.Year,
		Municipality: municipality,
		Entries:      assistant.RankCandidates(rows, byName, params.TopN),
	}

	config.RankingCache.SetDefault(cacheKey, response)
	writeJSONCached(w, response)
}

// GetPartyRanking serves the party vote totals for the municipal election.
func GetPartyRanking(w http.ResponseWriter, r *http.Request) {
	cacheKey := config.GetCacheKey("ranking", "partidos")
	if cached, found := config.RankingCache.Get(cacheKey); found {
		writeJSONCached(w, cached)
		return
	}

	rows, err := Store.VotesByOffice(r.Context(), config.OfficeCouncil, "", config.MunicipalYear, config.Round)
	if err != nil {
		log.Printf("Error fetching party ranking: %v", err)
		http.Error(w, "Error fetching party ranking", http.StatusInternalServerError)
		return
	}

	parties := assistant.RankParties(rows, 10)

	config.RankingCache.SetDefault(cacheKey, parties)
	writeJSONCached(w, parties)
}

// GetMunicipalities serves the gazetteer for dropdowns.
func GetMunicipalities(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	json.NewEncoder(w).Encode(assistant.Municipalities())
}

func writeJSONCached(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
