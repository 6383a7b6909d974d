package handlers_test

import (
	"net/http"
	"strings"
	"testing"
)

type campaignDTO struct {
	ID       string  `json:"id"`
	BrandID  string  `json:"brandId"`
	Title    string  `json:"title"`
	Slug     string  `json:"slug"`
	Category string  `json:"category"`
	Platform string  `json:"platform"`
	Budget   float64 `json:"budget"`
	Status   string  `json:"status"`
}

type campaignListDTO struct {
	Campaigns []campaignDTO `json:"campaigns"`
	Total     int64         `json:"total"`
}

func TestCreateCampaign(t *testing.T) {
	app := setupApp(t)
	brand := createUser(t, "Acme", "acme@example.com", "brand")

	resp := doJSON(t, app, http.MethodPost, "/campaigns", tokenFor(t, brand), map[string]interface{}{
		"title":        "Summer Launch",
		"category":     "fashion",
		"platform":     "instagram",
		"budget":       1500.0,
		"deliverables": []string{"1 reel", "2 stories"},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var campaign campaignDTO
	decodeBody(t, resp, &campaign)

	if campaign.BrandID != brand.ID.String() {
		t.Errorf("expected brandId %s, got %s", brand.ID, campaign.BrandID)
	}
	if !strings.HasPrefix(campaign.Slug, "summer-launch-") {
		t.Errorf("expected slug derived from title, got %q", campaign.Slug)
	}
	if campaign.Status != "open" {
		t.Errorf("expected status open, got %q", campaign.Status)
	}
}

func TestCreateCampaignRequiresBrand(t *testing.T) {
	app := setupApp(t)
	influencer := createUser(t, "Ivy", "ivy@example.com", "influencer")

	resp := doJSON(t, app, http.MethodPost, "/campaigns", tokenFor(t, influencer), map[string]interface{}{
		"title":    "Nope",
		"category": "fashion",
		"platform": "instagram",
		"budget":   100.0,
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for influencer, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestListCampaignsWithFilters(t *testing.T) {
	app := setupApp(t)
	brand := createUser(t, "Acme", "acme@example.com", "brand")
	token := tokenFor(t, brand)

	seed := []map[string]interface{}{
		{"title": "Fashion Reel", "category": "fashion", "platform": "instagram", "budget": 500.0},
		{"title": "Tech Review", "category": "tech", "platform": "youtube", "budget": 2000.0},
		{"title": "Fashion Haul", "category": "fashion", "platform": "tiktok", "budget": 3000.0},
	}
	for _, body := range seed {
		resp := doJSON(t, app, http.MethodPost, "/campaigns", token, body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed campaign failed with %d", resp.StatusCode)
		}
		resp.Body.Close()
	}

	var list campaignListDTO
	resp := doJSON(t, app, http.MethodGet, "/campaigns?category=fashion", token, nil)
	decodeBody(t, resp, &list)
	if list.Total != 2 {
		t.Errorf("category filter: expected 2, got %d", list.Total)
	}

	resp = doJSON(t, app, http.MethodGet, "/campaigns?min_budget=1000&max_budget=2500", token, nil)
	decodeBody(t, resp, &list)
	if list.Total != 1 || list.Campaigns[0].Title != "Tech Review" {
		t.Errorf("budget filter: expected only Tech Review, got %+v", list.Campaigns)
	}

	resp = doJSON(t, app, http.MethodGet, "/campaigns?platform=tiktok", token, nil)
	decodeBody(t, resp, &list)
	if list.Total != 1 || list.Campaigns[0].Title != "Fashion Haul" {
		t.Errorf("platform filter: expected only Fashion Haul, got %+v", list.Campaigns)
	}
}

func TestUpdateCampaignOwnership(t *testing.T) {
	app := setupApp(t)
	brand := createUser(t, "Acme", "acme@example.com", "brand")
	other := createUser(t, "Rival", "rival@example.com", "brand")

	resp := doJSON(t, app, http.MethodPost, "/campaigns", tokenFor(t, brand), map[string]interface{}{
		"title":    "Mine",
		"category": "fashion",
		"platform": "instagram",
		"budget":   100.0,
	})
	var campaign campaignDTO
	decodeBody(t, resp, &campaign)

	resp = doJSON(t, app, http.MethodPatch, "/campaigns/"+campaign.ID, tokenFor(t, other), map[string]interface{}{
		"title": "Hijacked",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for non-owner update, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPatch, "/campaigns/"+campaign.ID, tokenFor(t, brand), map[string]interface{}{
		"status": "closed",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("owner update failed with %d", resp.StatusCode)
	}
	decodeBody(t, resp, &campaign)
	if campaign.Status != "closed" {
		t.Errorf("expected status closed, got %q", campaign.Status)
	}
}

func TestContactCampaignOwnerSendsGreeting(t *testing.T) {
	app := setupApp(t)
	brand := createUser(t, "Acme", "acme@example.com", "brand")
	influencer := createUser(t, "Ivy", "ivy@example.com", "influencer")

	resp := doJSON(t, app, http.MethodPost, "/campaigns", tokenFor(t, brand), map[string]interface{}{
		"title":    "Summer Launch",
		"category": "fashion",
		"platform": "instagram",
		"budget":   1500.0,
	})
	var campaign campaignDTO
	decodeBody(t, resp, &campaign)

	resp = doJSON(t, app, http.MethodPost, "/campaigns/"+campaign.ID+"/contact", tokenFor(t, influencer), nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	var thread threadDTO
	resp = doJSON(t, app, http.MethodGet, "/messages/"+influencer.ID.String(), tokenFor(t, brand), nil)
	decodeBody(t, resp, &thread)
	if len(thread.Messages) != 1 {
		t.Fatalf("expected 1 message in thread, got %d", len(thread.Messages))
	}
	if !strings.Contains(thread.Messages[0].Content, "Summer Launch") {
		t.Errorf("greeting should mention the campaign title, got %q", thread.Messages[0].Content)
	}

	// Messaging your own campaign is rejected.
	resp = doJSON(t, app, http.MethodPost, "/campaigns/"+campaign.ID+"/contact", tokenFor(t, brand), nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for own campaign, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
