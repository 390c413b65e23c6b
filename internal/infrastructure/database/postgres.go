package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// PostgreSQLClient is a direct connection to the Supabase-hosted Postgres,
// for deployments that bypass the REST layer.
type PostgreSQLClient struct {
	DB *sql.DB
}

// NewPostgreSQLClient connects using the Supabase project URL and database
// password, going through the pooled port.
func NewPostgreSQLClient(supabaseURL, password string) (*PostgreSQLClient, error) {
	if supabaseURL == "" {
		return nil, fmt.Errorf("supabase URL is not set")
	}
	if password == "" {
		return nil, fmt.Errorf("database password is not set")
	}

	// https://xxx.supabase.co -> xxx.supabase.co
	host := strings.TrimPrefix(supabaseURL, "https://")

	connStr := fmt.Sprintf(
		"host=db.%s port=6543 user=postgres password=%s dbname=postgres sslmode=require",
		host, password,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize PostgreSQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return &PostgreSQLClient{
		DB: db,
	}, nil
}

// NewPostgreSQLClientWithRetry retries the initial connection, for test
// environments where the pooler warms up slowly.
func NewPostgreSQLClientWithRetry(supabaseURL, password string, attempts int, interval time.Duration) (*PostgreSQLClient, error) {
	var lastErr error
	for i := 0; i < attempts; i++ {
		client, err := NewPostgreSQLClient(supabaseURL, password)
		if err == nil {
			return client, nil
		}
		lastErr = err
		time.Sleep(interval)
	}
	return nil, fmt.Errorf("failed after %d attempts: %w", attempts, lastErr)
}

// Close closes the database connection.
func (pc *PostgreSQLClient) Close() error {
	if pc.DB != nil {
		return pc.DB.Close()
	}
	return nil
}

// HealthCheck pings the database.
func (pc *PostgreSQLClient) HealthCheck() error {
	if pc.DB == nil {
		return fmt.Errorf("PostgreSQL client is not initialized")
	}
	return pc.DB.Ping()
}
