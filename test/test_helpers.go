package test

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"pnw-map/internal/domain/repository"
	"pnw-map/internal/infrastructure/database"
	repoimpl "pnw-map/internal/repository"
)

// setupTestEnvironment loads .env and verifies the variables the
// integration tests need. A non-nil error means the suite should skip.
func setupTestEnvironment() error {
	if err := godotenv.Load("../.env"); err != nil {
		// CI may provide the variables directly, so a missing .env is
		// only a problem if the checks below fail.
	}

	requiredVars := []string{
		"SUPABASE_URL",
		"SUPABASE_ANON_KEY",
	}

	var missing []string
	for _, envVar := range requiredVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// setupTestMarkersRepository builds a Supabase-backed markers repository
// for the integration tests.
func setupTestMarkersRepository() (repository.MarkersRepository, error) {
	if err := setupTestEnvironment(); err != nil {
		return nil, err
	}

	client, err := database.NewSupabaseClient()
	if err != nil {
		return nil, err
	}
	if err := client.HealthCheck(); err != nil {
		return nil, err
	}

	return repoimpl.NewSupabaseMarkersRepository(client), nil
}
