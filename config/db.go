package config

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	DB          *sql.DB
	MongoDB     *mongo.Database
	MongoClient *mongo.Client
)

// LoadEnv loads environment variables from a .env file when one exists.
func LoadEnv() error {
	possiblePaths := []string{
		".env",
		"../.env",
		os.Getenv("ELEITORADO_ENV"),
	}

	var loadedFile string
	for _, path := range possiblePaths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err == nil {
			loadedFile = path
			log.Printf("Found .env file at: %s", path)
			break
		}
	}

	if loadedFile == "" {
		// No .env is fine when the database settings are already exported.
		if os.Getenv("DB_HOST") != "" {
			return nil
		}
		return fmt.Errorf("no .env file found and DB_HOST not set in environment")
	}

	file, err := os.Open(loadedFile)
	if err != nil {
		return fmt.Errorf("error opening .env file: %v", err)
	}
	defer file.Close()

	log.Printf("Loading environment variables from %s", loadedFile)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		value = strings.Trim(value, `"'`)
		os.Setenv(key, value)
		if !strings.Contains(strings.ToLower(key), "password") && !strings.Contains(strings.ToLower(key), "secret") {
			log.Printf("Set environment variable: %s", key)
		}
	}

	return scanner.Err()
}

// InitDBWithRetry attempts to connect to PostgreSQL with retries.
func InitDBWithRetry(maxRetries int) error {
	var err error
	for i := 0; i < maxRetries; i++ {
		err = InitDB()
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to PostgreSQL (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(5 * time.Second)
	}
	return fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err)
}

func InitDB() error {
	connStr := getPostgresConnString()

	log.Printf("DB Host: %s", os.Getenv("DB_HOST"))
	log.Printf("DB Name: %s", os.Getenv("DB_NAME"))

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("error opening PostgreSQL database: %v", err)
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(5)
	DB.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = DB.PingContext(ctx); err != nil {
		return fmt.Errorf("error connecting to PostgreSQL database: %v", err)
	}

	// Both electoral tables must exist before the engine can serve anything.
	for _, table := range []string{"vote_records", "turnout_records"} {
		var tableExists bool
		err = DB.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_name = $1
			)`, table).Scan(&tableExists)
		if err != nil {
			return fmt.Errorf("error checking %s table: %v", table, err)
		}
		if !tableExists {
			return fmt.Errorf("%s table does not exist in the database", table)
		}
	}

	log.Printf("Successfully connected to PostgreSQL database")
	return nil
}

// InitPostgreSQL creates the indexes the assistant queries rely on.
func InitPostgreSQL() error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_vote_records_candidate ON vote_records (candidate_name)`,
		`CREATE INDEX IF NOT EXISTS idx_vote_records_office ON vote_records (office_code, year, round)`,
		`CREATE INDEX IF NOT EXISTS idx_vote_records_municipality ON vote_records (municipality, office_code, year)`,
		`CREATE INDEX IF NOT EXISTS idx_turnout_records_municipality ON turnout_records (municipality, year, round)`,
		`CREATE INDEX IF NOT EXISTS idx_turnout_records_eligible ON turnout_records (eligible DESC)`,
	}

	for _, idx := range indexes {
		_, err := DB.Exec(idx)
		if err != nil {
			return fmt.Errorf("failed to create index: %v", err)
		}
	}

	return nil
}

// ConnectMongoWithRetry initializes the optional conversation store.
// A missing MONGO_URI is not an error: history persistence is simply off.
func ConnectMongoWithRetry(maxRetries int) error {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Printf("MONGO_URI not set, conversation history persistence disabled")
		return nil
	}

	var err error
	for i := 0; i < maxRetries; i++ {
		err = connectMongo(mongoURI)
		if err == nil {
			return nil
		}
		log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
		time.Sleep(5 * time.Second)
	}
	return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

func connectMongo(uri string) error {
	clientOptions := options.Client().ApplyURI(uri).
		SetMaxPoolSize(50).
		SetMinPoolSize(5).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetSocketTimeout(30 * time.Second).
		SetRetryWrites(true).
		SetRetryReads(true).
		SetReadPreference(readpref.Primary())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	MongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("error connecting to MongoDB: %v", err)
	}

	if err = MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("error pinging MongoDB: %v", err)
	}

	MongoDB = MongoClient.Database(getMongoDBName())
	log.Printf("Successfully connected to MongoDB database: %s", getMongoDBName())

	if err := createIndexes(ctx); err != nil {
		return fmt.Errorf("error creating indexes: %v", err)
	}

	return nil
}

func createIndexes(ctx context.Context) error {
	conversations := MongoDB.Collection("conversations")
	convIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "session_id", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("session_created_idx"),
		},
	}

	_, err := conversations.Indexes().CreateMany(ctx, convIndexes)
	if err != nil {
		return fmt.Errorf("error creating conversation indexes: %v", err)
	}
	log.Printf("Successfully created conversation indexes")

	return nil
}

// Health check functions
func CheckMongoHealth() error {
	if MongoClient == nil {
		return fmt.Errorf("MongoDB not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := MongoClient.Ping(ctx, nil); err != nil {
		return fmt.Errorf("MongoDB health check failed: %v", err)
	}
	return nil
}

func CheckPostgresHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL health check failed: %v", err)
	}
	return nil
}

// Graceful shutdown
func CloseDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Error closing PostgreSQL connection: %v", err)
		}
	}

	if MongoClient != nil {
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Printf("Error closing MongoDB connection: %v", err)
		}
	}
}
