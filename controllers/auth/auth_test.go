package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agazian/config"
	authController "agazian/controllers/auth"
	"agazian/database"
	authRoutes "agazian/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app, authController.New(db))
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body fiber.Map) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"name":     "Abel",
		"email":    "Abel@Test.dev",
		"password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	data := out["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]interface{})
	// Email is normalized and the role can never be self-assigned
	assert.Equal(t, "abel@test.dev", user["email"])
	assert.Equal(t, "user", user["role"])

	// Login with the plain password against the stored hash
	resp = postJSON(t, app, "/auth/login", fiber.Map{
		"email":    "abel@test.dev",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newAuthApp(t)

	body := fiber.Map{"name": "Abel", "email": "abel@test.dev", "password": "secret1"}
	resp := postJSON(t, app, "/auth/register", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/register", body)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := newAuthApp(t)

	tests := []struct {
		name string
		body fiber.Map
	}{
		{name: "short name", body: fiber.Map{"name": "A", "email": "a@test.dev", "password": "secret1"}},
		{name: "bad email", body: fiber.Map{"name": "Abel", "email": "not-an-email", "password": "secret1"}},
		{name: "short password", body: fiber.Map{"name": "Abel", "email": "a@test.dev", "password": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/auth/register", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestLoginFailures(t *testing.T) {
	app := newAuthApp(t)

	resp := postJSON(t, app, "/auth/register", fiber.Map{
		"name": "Abel", "email": "abel@test.dev", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{"email": "abel@test.dev", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", fiber.Map{"email": "nobody@test.dev", "password": "secret1"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
