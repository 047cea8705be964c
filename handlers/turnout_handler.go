package handlers

import (
	"log"
	"net/http"
	"strconv"

	"electoral_site/assistant"
	"electoral_site/config"
	"electoral_site/models"
)

type TurnoutResponse struct {
	Municipality string                `json:"municipality,omitempty"`
	Year         int                   `json:"year"`
	Summary      models.TurnoutSummary `json:"summary"`
	Zones        int                   `json:"zones"`
}

// GetTurnout serves the turnout summary for a municipality (or statewide
// when municipio is omitted) and year.
func GetTurnout(w http.ResponseWriter, r *http.Request) {
	municipality := r.URL.Query().Get("municipio")

	year := config.MunicipalYear
	if yearParam := r.URL.Query().Get("ano"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			http.Error(w, "Invalid ano parameter", http.StatusBadRequest)
			return
		}
		year = parsed
	}

	cacheKey := config.GetCacheKey("turnout", municipality, year)
	if cached, found := config.TurnoutCache.Get(cacheKey); found {
		writeJSONCached(w, cached)
		return
	}

	rows, err := Store.TurnoutByYear(r.Context(), municipality, year)
	if err != nil {
		log.Printf("Error fetching turnout for %q year %d: %v", municipality, year, err)
		http.Error(w, "Error fetching turnout", http.StatusInternalServerError)
		return
	}
	if len(rows) == 0 {
		http.Error(w, "Turnout data not found", http.StatusNotFound)
		return
	}

	response := TurnoutResponse{
		Municipality: municipality,
		Year:         year,
		Summary:      assistant.SummarizeTurnout(rows),
		Zones:        countZones(rows),
	}

	config.TurnoutCache.SetDefault(cacheKey, response)
	writeJSONCached(w, response)
}

func countZones(rows []models.TurnoutRecord) int {
	seen := make(map[int]bool)
	for _, r := range rows {
		seen[r.Zone] = true
	}
	return len(seen)
}
