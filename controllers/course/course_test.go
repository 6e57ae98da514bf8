package courseController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"agazian/config"
	courseController "agazian/controllers/course"
	"agazian/database"
	"agazian/middleware"
	"agazian/models"
	courseRoutes "agazian/routers/courseRoutes"
	"agazian/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCourseApp(t *testing.T) (*fiber.App, *gorm.DB) {
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
	ctl := courseController.New(db, services.NewProgressionService(db))
	courseRoutes.SetupCourseRoutes(app, ctl)
	courseRoutes.SetupAdminCourseRoutes(app, ctl)
	return app, db
}

func tokenFor(t *testing.T, db *gorm.DB, role string) string {
	t.Helper()
	user := models.User{Name: "tester-" + role, Email: role + "@test.dev", Password: "hashed", Role: role}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAdminRoutesRejectNonAdmins(t *testing.T) {
	app, db := newCourseApp(t)
	learner := tokenFor(t, db, models.RoleUser)

	body := fiber.Map{
		"title_en": "Fidel Basics", "title_am": "የፊደል መሰረት",
		"description_en": "d", "description_am": "መ",
	}

	resp := doJSON(t, app, http.MethodPost, "/admin/course", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/admin/course", learner, body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminCourseLifecycle(t *testing.T) {
	app, db := newCourseApp(t)
	admin := tokenFor(t, db, models.RoleAdmin)

	resp := doJSON(t, app, http.MethodPost, "/admin/course", admin, fiber.Map{
		"title_en":       "Fidel Basics",
		"title_am":       "የፊደል መሰረት",
		"description_en": "Learn the alphabet",
		"description_am": "ፊደላትን ይማሩ",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	courseID := uint(out["data"].(map[string]interface{})["ID"].(float64))

	// Public catalog sees the new course
	resp = doJSON(t, app, http.MethodGet, "/course/list", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/admin/course/1", admin, fiber.Map{"title_en": "Fidel 101"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var course models.Course
	require.NoError(t, db.First(&course, courseID).Error)
	assert.Equal(t, "Fidel 101", course.TitleEn)
	assert.Equal(t, "የፊደል መሰረት", course.TitleAm)

	resp = doJSON(t, app, http.MethodDelete, "/admin/course/1", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdminDeleteCascadesToProgress(t *testing.T) {
	app, db := newCourseApp(t)
	admin := tokenFor(t, db, models.RoleAdmin)

	course := models.Course{TitleEn: "Fidel Basics", TitleAm: "የፊደል መሰረት"}
	require.NoError(t, db.Create(&course).Error)
	module := models.Module{CourseID: course.ID, TitleEn: "Module 1", TitleAm: "ክፍል 1"}
	require.NoError(t, db.Create(&module).Error)
	quiz := models.Quiz{
		ModuleID: module.ID, QuestionEn: "Q", QuestionAm: "ጥ",
		OptionsEn: []string{"a", "b"}, OptionsAm: []string{"ሀ", "ለ"}, CorrectAnswer: "a",
	}
	require.NoError(t, db.Create(&quiz).Error)
	progress := models.UserProgress{UserID: 9, CourseID: course.ID, Level: 1}
	require.NoError(t, db.Create(&progress).Error)

	resp := doJSON(t, app, http.MethodDelete, "/admin/course/1", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var modules, quizzes, records int64
	require.NoError(t, db.Model(&models.Module{}).Count(&modules).Error)
	require.NoError(t, db.Model(&models.Quiz{}).Count(&quizzes).Error)
	require.NoError(t, db.Model(&models.UserProgress{}).Count(&records).Error)
	assert.Zero(t, modules)
	assert.Zero(t, quizzes)
	assert.Zero(t, records)
}

func TestPublicCatalog(t *testing.T) {
	app, db := newCourseApp(t)

	course := models.Course{TitleEn: "Fidel Basics", TitleAm: "የፊደል መሰረት"}
	require.NoError(t, db.Create(&course).Error)
	m1 := models.Module{CourseID: course.ID, TitleEn: "Module 2", TitleAm: "ክፍል 2", OrderIndex: 2}
	require.NoError(t, db.Create(&m1).Error)
	m2 := models.Module{CourseID: course.ID, TitleEn: "Module 1", TitleAm: "ክፍል 1", OrderIndex: 1}
	require.NoError(t, db.Create(&m2).Error)

	resp := doJSON(t, app, http.MethodGet, "/course/1/modules", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	modules := out["data"].(map[string]interface{})["modules"].([]interface{})
	require.Len(t, modules, 2)
	// Ordered by order_index, not insertion
	first := modules[0].(map[string]interface{})
	assert.Equal(t, "Module 1", first["title_en"])

	resp = doJSON(t, app, http.MethodGet, "/course/99", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/course/not-a-number", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
