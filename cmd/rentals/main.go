// cmd/rentals/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"rentals/config"
	"rentals/internal/api/handlers/favorites"
	"rentals/internal/api/handlers/properties"
	"rentals/internal/api/middleware"
	"rentals/internal/geocoder"
	"rentals/internal/lib/logger/utils"
	"rentals/internal/pagination"
	"rentals/internal/service"
	"rentals/internal/storage/postgres"
	_ "rentals/swagger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Property Rentals API
// @version 1.0
// @description Rental listings with search, favorites and a pagination strip for page links.

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	if err := utils.InitLogger(); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Logger.Sync()

	utils.Logger.Info("Starting Property Rentals API")

	cfg, err := config.LoadConfig()
	if err != nil {
		utils.Logger.Fatal("Config load failed", zap.Error(err))
		return
	}
	utils.Logger.Debug("Configuration loaded",
		zap.String("db_host", cfg.DBHost),
		zap.Int("db_port", cfg.DBPort),
		zap.String("db_name", cfg.DBName),
		zap.Int("server_port", cfg.ServerPort),
		zap.Int("page_size", cfg.PageSize),
		zap.Strings("cors_origins", cfg.CORSOrigins),
	)

	pool, err := pgxpool.New(context.Background(), cfg.DBURL)
	if err != nil {
		utils.Logger.Fatal("Database connection failed", zap.Error(err))
		return
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		utils.Logger.Fatal("Database ping failed", zap.Error(err))
		return
	}
	utils.Logger.Info("Database connected")

	if err := runMigrations(cfg.DBURL); err != nil {
		utils.Logger.Fatal("Database migration failed", zap.Error(err))
		return
	}
	utils.Logger.Info("Database migrations completed successfully")

	propertyStorage := postgres.NewPgStorage(pool)
	favoriteStorage := postgres.NewPgFavoriteStorage(pool)

	var geo geocoder.Geocoder
	if cfg.GeocoderURL != "" {
		geo = geocoder.NewGeocoderClient(cfg.GeocoderURL)
	} else {
		utils.Logger.Warn("GEOCODER_URL not set, properties will be stored without coordinates")
	}

	pager := pagination.New(pagination.NewZapLogger(utils.Logger))
	propertyService := service.NewPropertyService(propertyStorage, favoriteStorage, geo, pager)
	favoriteService := service.NewFavoriteService(propertyStorage, favoriteStorage, pager)

	propertyHandlers := properties.NewPropertyHandlers(propertyService, cfg.PageSize)
	favoriteHandlers := favorites.NewFavoriteHandlers(favoriteService, cfg.PageSize)

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.RequestLogging)

	router.HandleFunc("/health", propertyHandlers.HealthCheckHandler).Methods("GET")
	router.HandleFunc("/pagination", propertyHandlers.GetPagesHandler).Methods("GET")
	router.HandleFunc("/properties", propertyHandlers.GetPropertiesHandler).Methods("GET")
	router.HandleFunc("/properties", propertyHandlers.AddPropertyHandler).Methods("POST")
	router.HandleFunc("/properties/featured", propertyHandlers.GetFeaturedHandler).Methods("GET")
	router.HandleFunc("/properties/{id:[0-9]+}", propertyHandlers.GetPropertyHandler).Methods("GET")
	router.HandleFunc("/properties/{id:[0-9]+}", propertyHandlers.UpdatePropertyHandler).Methods("PUT")
	router.HandleFunc("/properties/{id:[0-9]+}", propertyHandlers.DeletePropertyHandler).Methods("DELETE")
	router.HandleFunc("/properties/{id:[0-9]+}/favorite", favoriteHandlers.GetFavoriteStatusHandler).Methods("GET")
	router.HandleFunc("/properties/{id:[0-9]+}/favorite", favoriteHandlers.ToggleFavoriteHandler).Methods("POST")
	router.HandleFunc("/favorites", favoriteHandlers.GetFavoritesHandler).Methods("GET")

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderUserID, middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler(router)

	serverAddr := fmt.Sprintf(":%d", cfg.ServerPort)
	utils.Logger.Info("Server starting", zap.String("address", serverAddr))
	log.Fatal(http.ListenAndServe(serverAddr, handler))
}

func runMigrations(dbURL string) error {
	migrationSourceURL := "file://internal/migrations"
	m, err := migrate.New(migrationSourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("failed to initialize migration: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
