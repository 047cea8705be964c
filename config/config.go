package config

import (
	"os"
	"strconv"
)

// Election parameters for the configured state (Rondônia).
// Years, rounds and office codes follow the TSE conventions of the dataset.
var (
	StateCode           = getEnvWithDefault("STATE_CODE", "RO")
	DefaultMunicipality = getEnvWithDefault("DEFAULT_MUNICIPALITY", "PORTO VELHO")

	MunicipalYear = getEnvAsInt("MUNICIPAL_YEAR", 2024)
	GeneralYear   = getEnvAsInt("GENERAL_YEAR", 2022)
	PreviousYear  = getEnvAsInt("PREVIOUS_YEAR", 2020)
	Round         = getEnvAsInt("ELECTION_ROUND", 1)
)

// TSE office codes.
const (
	OfficeGovernor   = 3
	OfficeFederalDep = 6
	OfficeStateDep   = 7
	OfficeMayor      = 11
	OfficeCouncil    = 13
)

// Row caps per fetch. These bound how much of the remote result set each
// pipeline consumes and are tunable without touching pipeline logic.
var (
	CapCandidate   = getEnvAsInt("CAP_CANDIDATE", 1000)
	CapTurnout     = getEnvAsInt("CAP_TURNOUT", 500)
	CapTerritorial = getEnvAsInt("CAP_TERRITORIAL", 1000)
	CapZone        = getEnvAsInt("CAP_ZONE", 2000)
	CapStrength    = getEnvAsInt("CAP_STRENGTH", 3000)
	CapPriority    = getEnvAsInt("CAP_PRIORITY", 100)
	CapRanking     = getEnvAsInt("CAP_RANKING", 1500)
)

// Database configuration
func getPostgresConnString() string {
	host := getEnvWithDefault("DB_HOST", "localhost")
	port := getEnvWithDefault("DB_PORT", "5432")
	user := getEnvWithDefault("DB_USER", "postgres")
	password := getEnvWithDefault("DB_PASSWORD", "1234")
	dbname := getEnvWithDefault("DB_NAME", "eleitorado")

	return "host=" + host + " port=" + port + " user=" + user +
		" password=" + password + " dbname=" + dbname + " sslmode=disable"
}

func getMongoDBName() string {
	return getEnvWithDefault("MONGO_DB_NAME", "eleitorado")
}

// Helper functions
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
