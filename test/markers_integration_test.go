package test

import (
	"context"
	"fmt"
	"testing"

	"pnw-map/internal/domain/model"
)

// TestMarkersRoundTrip exercises the real Supabase markers table:
// create, list, delete. Skips when the environment is not configured.
func TestMarkersRoundTrip(t *testing.T) {
	repo, err := setupTestMarkersRepository()
	if err != nil {
		t.Skipf("⚠️  Supabase environment not available: %v", err)
	}

	ctx := context.Background()
	const testOwner = "integration-test-user"

	fmt.Println("🗺️  Markers round trip against the live store")

	var createdID string
	t.Run("create a marker", func(t *testing.T) {
		created, err := repo.Create(ctx, &model.Marker{
			OwnerID:     testOwner,
			Latitude:    41.5853,
			Longitude:   -87.4748,
			Description: "integration test pin",
			Color:       model.ColorGreen,
		})
		if err != nil {
			t.Fatalf("❌ create failed: %v", err)
		}
		if created.ID == "" {
			t.Fatal("❌ store did not assign an id")
		}
		createdID = created.ID
		fmt.Printf("✅ created marker %s\n", createdID)
	})

	t.Run("list includes the new marker", func(t *testing.T) {
		markers, err := repo.ListByOwner(ctx, testOwner)
		if err != nil {
			t.Fatalf("❌ list failed: %v", err)
		}
		found := false
		for _, m := range markers {
			if m.ID == createdID {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("❌ marker %s missing from list of %d", createdID, len(markers))
		}
		fmt.Printf("✅ listed %d markers for %s\n", len(markers), testOwner)
	})

	t.Run("delete the marker", func(t *testing.T) {
		if err := repo.Delete(ctx, createdID); err != nil {
			t.Fatalf("❌ delete failed: %v", err)
		}
		if err := repo.Delete(ctx, createdID); err == nil {
			t.Fatal("❌ second delete of the same id should fail")
		}
		fmt.Printf("✅ deleted marker %s\n", createdID)
	})
}
