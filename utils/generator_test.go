package utils

import (
	"strings"
	"testing"

	"github.com/PrathamGarg1/Xponsor-sub000/database"
)

func TestGenerateUniqueCampaignSlug(t *testing.T) {
	database.ConnectTestDB(t)

	first, err := GenerateUniqueCampaignSlug(database.DB, "Summer Launch 2026!")
	if err != nil {
		t.Fatalf("failed to generate slug: %v", err)
	}
	if !strings.HasPrefix(first, "summer-launch-2026-") {
		t.Errorf("unexpected slug %q", first)
	}

	second, err := GenerateUniqueCampaignSlug(database.DB, "Summer Launch 2026!")
	if err != nil {
		t.Fatalf("failed to generate slug: %v", err)
	}
	if first == second {
		t.Error("slugs for the same title should not collide")
	}
}

func TestSlugifyFallsBack(t *testing.T) {
	if got := slugify("!!!"); got != "campaign" {
		t.Errorf("expected fallback slug, got %q", got)
	}
	if got := slugify("  Glow & Go  "); got != "glow-go" {
		t.Errorf("expected 'glow-go', got %q", got)
	}
}
