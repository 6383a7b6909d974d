package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PrathamGarg1/Xponsor-sub000/database"
	"github.com/PrathamGarg1/Xponsor-sub000/models"
	"github.com/PrathamGarg1/Xponsor-sub000/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "test-secret"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	database.ConnectTestDB(t)

	app := fiber.New()
	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.CampaignRoutes(app)
	routes.MessagingRoutes(app)
	routes.UploadRoutes(app)
	return app
}

func createUser(t *testing.T, name, email, userType string) *models.User {
	t.Helper()

	user := models.User{
		FullName: name,
		Email:    email,
		Password: "hashed",
	}
	if userType != "" {
		user.UserType = &userType
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return &user
}

func seedMessage(t *testing.T, sender, receiver *models.User, content string, createdAt time.Time) *models.Message {
	t.Helper()

	msg := models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		CreatedAt:  createdAt,
	}
	if err := database.DB.Create(&msg).Error; err != nil {
		t.Fatalf("failed to seed message: %v", err)
	}
	return &msg
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	userType := ""
	if user.UserType != nil {
		userType = *user.UserType
	}
	claims := jwt.MapClaims{
		"user_id":   user.ID.String(),
		"user_type": userType,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

func messageCount(t *testing.T, a, b uuid.UUID) int64 {
	t.Helper()
	var count int64
	database.DB.Model(&models.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&count)
	return count
}
