package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice Example",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Duplicate email is rejected.
	resp = doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("duplicate register: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	var login struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &login)
	if login.Token == "" {
		t.Fatal("login should return a token")
	}

	resp = doJSON(t, app, http.MethodPost, "/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password: expected 401, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/auth/me", login.Token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	var me struct {
		Email    string  `json:"email"`
		UserType *string `json:"userType"`
	}
	decodeBody(t, resp, &me)
	if me.Email != "alice@example.com" {
		t.Errorf("unexpected email %q", me.Email)
	}
	if me.UserType != nil {
		t.Error("userType should be unset before onboarding")
	}
}

func TestOnboardingIsOneShot(t *testing.T) {
	app := setupApp(t)
	user := createUser(t, "Ivy", "ivy@example.com", "")
	token := tokenFor(t, user)

	resp := doJSON(t, app, http.MethodPost, "/onboarding", token, map[string]string{
		"userType": "influencer",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("onboarding: expected 200, got %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
		User  struct {
			UserType *string `json:"userType"`
		} `json:"user"`
	}
	decodeBody(t, resp, &out)
	if out.User.UserType == nil || *out.User.UserType != "influencer" {
		t.Fatalf("expected userType influencer, got %+v", out.User.UserType)
	}
	if out.Token == "" {
		t.Error("onboarding should re-issue a token with the type claim")
	}

	// Repeating the same choice is idempotent.
	resp = doJSON(t, app, http.MethodPost, "/onboarding", token, map[string]string{
		"userType": "influencer",
	})
	if resp.StatusCode != http.StatusOK {
		t.Errorf("repeat onboarding: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Switching sides is not.
	resp = doJSON(t, app, http.MethodPost, "/onboarding", token, map[string]string{
		"userType": "brand",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("side switch: expected 409, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/onboarding", token, map[string]string{
		"userType": "alien",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("invalid type: expected 400, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Onboarding created the empty profile row.
	resp = doJSON(t, app, http.MethodGet, "/profile", out.Token, nil)
	var profile struct {
		InfluencerProfile *struct {
			UserID string `json:"userId"`
		} `json:"influencerProfile"`
	}
	decodeBody(t, resp, &profile)
	if profile.InfluencerProfile == nil || profile.InfluencerProfile.UserID != user.ID.String() {
		t.Errorf("expected influencer profile row, got %+v", profile.InfluencerProfile)
	}
}
