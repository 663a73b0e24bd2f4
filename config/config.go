// config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"rentals/internal/models"
)

type Config struct {
	DBURL       string
	DBHost      string
	DBPort      int
	DBUser      string
	DBPassword  string
	DBName      string
	GeocoderURL string
	ServerPort  int
	PageSize    int
	CORSOrigins []string
}

func LoadConfig() (*Config, error) {
	godotenv.Load()

	geocoderURL := os.Getenv("GEOCODER_URL")
	serverPort, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		serverPort = 8080
	}
	pageSize, err := strconv.Atoi(os.Getenv("PAGE_SIZE"))
	if err != nil || pageSize <= 0 {
		pageSize = models.DefaultPageSize
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbHost := os.Getenv("DB_HOST")
		var dbPort int
		dbPort, err = strconv.Atoi(os.Getenv("DB_PORT"))
		if err != nil {
			dbPort = 5432
		}
		dbUser := os.Getenv("DB_USER")
		dbPassword := os.Getenv("DB_PASSWORD")
		dbName := os.Getenv("DB_NAME")

		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", dbUser, dbPassword, dbHost, dbPort, dbName)
	}

	parsedDBURL, err := url.Parse(dbURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}

	dbPortParsed, _ := strconv.Atoi(parsedDBURL.Port())
	dbPassword, _ := parsedDBURL.User.Password()

	return &Config{
		DBURL:       dbURL,
		DBHost:      parsedDBURL.Hostname(),
		DBPort:      dbPortParsed,
		DBUser:      parsedDBURL.User.Username(),
		DBPassword:  dbPassword,
		DBName:      strings.TrimPrefix(parsedDBURL.Path, "/"),
		GeocoderURL: geocoderURL,
		ServerPort:  serverPort,
		PageSize:    pageSize,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
	}, nil
}

// splitOrigins reads a comma separated list. Empty means any origin.
func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
