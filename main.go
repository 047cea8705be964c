package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"electoral_site/assistant"
	"electoral_site/config"
	apihandlers "electoral_site/handlers"
	"electoral_site/middleware"
)

type HealthResponse struct {
	Status    string `json:"status"`
	DBStatus  string `json:"db_status"`
	DBDetails struct {
		Host     string   `json:"host"`
		Port     string   `json:"port"`
		Database string   `json:"database"`
		Tables   []string `json:"tables,omitempty"`
	} `json:"db_details"`
	MongoStatus string `json:"mongo_status,omitempty"`
	Error       string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status: "ok",
	}

	if config.DB == nil {
		response.Status = "error"
		response.DBStatus = "not_initialized"
		response.Error = "Database connection not initialized"
	} else {
		err := config.DB.Ping()
		if err != nil {
			response.Status = "error"
			response.DBStatus = "connection_error"
			response.Error = fmt.Sprintf("Database ping failed: %v", err)
		} else {
			response.DBStatus = "connected"

			response.DBDetails.Host = os.Getenv("DB_HOST")
			response.DBDetails.Port = os.Getenv("DB_PORT")
			response.DBDetails.Database = os.Getenv("DB_NAME")

			tables := []string{"vote_records", "turnout_records"}
			var existingTables []string

			for _, table := range tables {
				var exists bool
				err := config.DB.QueryRow(`
					SELECT EXISTS (
						SELECT FROM information_schema.tables
						WHERE table_name = $1
					)`, table).Scan(&exists)

				if err == nil && exists {
					existingTables = append(existingTables, table)
				}
			}
			response.DBDetails.Tables = existingTables
		}
	}

	if config.MongoClient != nil {
		if err := config.CheckMongoHealth(); err != nil {
			response.MongoStatus = "connection_error"
		} else {
			response.MongoStatus = "connected"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func main() {
	startTime := time.Now()
	log.Printf("Starting server initialization at %s", startTime.Format(time.RFC3339))

	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("No PORT environment variable found, using default: %s", port)
	}

	log.Println("Initializing PostgreSQL database...")
	if err := config.InitDBWithRetry(5); err != nil {
		log.Fatalf("Failed to initialize PostgreSQL: %v", err)
	}
	log.Println("PostgreSQL database initialized successfully")
	defer config.CloseDB()

	if err := config.InitPostgreSQL(); err != nil {
		log.Printf("Warning: Failed to create indexes: %v", err)
	}

	if err := config.ConnectMongoWithRetry(3); err != nil {
		log.Printf("Warning: MongoDB unavailable, continuing without history: %v", err)
	}

	config.InitCache()

	// Wire the engine and the dashboard store over the live database.
	store := assistant.NewStore(config.DB)
	apihandlers.Store = store
	apihandlers.Engine = assistant.New(store)

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"https://eleitorado-ro.com.br",
			"https://www.eleitorado-ro.com.br",
		},
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"Origin",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.MetricsMiddleware)
	r.Use(handlers.CompressHandler)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	registerRoutes(api)
	log.Println("Routes registered successfully")

	api.HandleFunc("/health/detailed", healthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Server is running at http://localhost:%s", port)
	log.Printf("Assistant endpoint: http://localhost:%s/api/v1/assistant", port)
	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

func registerRoutes(api *mux.Router) {
	// Assistant routes
	api.HandleFunc("/assistant", apihandlers.AskAssistant).Methods("POST", "OPTIONS")
	api.HandleFunc("/assistant/history", apihandlers.GetConversationHistory).Methods("GET")

	// Ranking routes
	api.HandleFunc("/rankings/partidos", apihandlers.GetPartyRanking).Methods("GET")
	api.HandleFunc("/rankings/{office}", apihandlers.GetRanking).Methods("GET")

	// Turnout routes
	api.HandleFunc("/turnout", apihandlers.GetTurnout).Methods("GET")

	// Gazetteer
	api.HandleFunc("/municipalities", apihandlers.GetMunicipalities).Methods("GET")

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")
}
