package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/saas-starter-backend/api"
	"github.com/rpupo63/saas-starter-backend/docstore"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	// The server runs even without a store connection: handlers answer
	// store-unavailable errors and /test reports the missing pieces.
	store := connectStore()

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(store)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// connectStore opens the configured document store backend, or returns
// nil when no connection can be established.
func connectStore() docstore.Store {
	backend := getEnv("STORE_BACKEND", "postgres")

	if backend == "memory" {
		fmt.Println("Using in-memory document store (ephemeral)")
		return docstore.NewMemoryStore()
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Println("Warning: DATABASE_URL not set, starting without a document store")
		return nil
	}
	dsn = withDatabaseName(dsn, os.Getenv("DATABASE_NAME"))

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Warning: Error connecting to database: %v\n", err)
		return nil
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Warning: Error testing database connection: %v\n", err)
		return nil
	}

	store, err := docstore.New(backend, db)
	if err != nil {
		fmt.Printf("Warning: Error initializing document store: %v\n", err)
		return nil
	}

	fmt.Println("Connected to document store")
	return store
}

// withDatabaseName appends a dbname component to a keyword/value DSN when
// DATABASE_NAME is set and the DSN does not already name a database.
func withDatabaseName(dsn, name string) string {
	if name == "" {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return dsn
	}
	if strings.Contains(dsn, "dbname=") {
		return dsn
	}
	return dsn + " dbname=" + name
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}

// getEnv returns the value of the environment variable key or a fallback value.
func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
