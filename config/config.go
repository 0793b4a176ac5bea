package config

import (
	"log"
	"os"
	"strconv"
)

const (
	defaultDataSource       = "data/school-directory-data.csv"
	defaultDatabasePath     = "directory.db"
	defaultGeocodedDataPath = "data/geocoded-addresses.json"
	defaultSearchLimit      = 10
)

type Config struct {
	// CSV source for the directory: a local file path or an http(s) URL
	DataSource string

	// database path (favorites blob, geocode cache, custom locations)
	DatabasePath string

	// school events ICS feed; empty serves the built-in mock events
	CalendarURL string

	// pre-computed geocoded address lookup file served to the map view
	GeocodedDataPath string

	// maximum number of student and parent results returned per search
	SearchLimit int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	cfg := Config{
		DataSource:       getEnvOrDefault("DATA_SOURCE", defaultDataSource),
		DatabasePath:     getEnvOrDefault("DATABASE_PATH", defaultDatabasePath),
		CalendarURL:      getEnvOrDefault("CALENDAR_URL", ""),
		GeocodedDataPath: getEnvOrDefault("GEOCODED_DATA_PATH", defaultGeocodedDataPath),
		SearchLimit:      getEnvIntOrDefault("SEARCH_LIMIT", defaultSearchLimit),
	}

	return cfg, nil
}
