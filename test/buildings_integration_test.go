package test

import (
	"context"
	"fmt"
	"testing"

	"pnw-map/internal/infrastructure/database"
	repoimpl "pnw-map/internal/repository"
)

// TestBuildingsTable checks that the buildings table serves the campus
// footprints the resolver knows about. Skips without a configured store.
func TestBuildingsTable(t *testing.T) {
	if err := setupTestEnvironment(); err != nil {
		t.Skipf("⚠️  Supabase environment not available: %v", err)
	}

	client, err := database.NewSupabaseClient()
	if err != nil {
		t.Fatalf("❌ Supabase client setup failed: %v", err)
	}

	repo := repoimpl.NewSupabaseBuildingsRepository(client)
	ctx := context.Background()

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("❌ list failed: %v", err)
	}
	fmt.Printf("✅ buildings table has %d rows\n", len(records))

	for _, record := range records {
		if record.Name == "" {
			t.Errorf("❌ building row with empty name: %+v", record)
		}
		if record.Floors < 0 {
			t.Errorf("❌ building %s has negative floor count %d", record.Name, record.Floors)
		}
	}
}
