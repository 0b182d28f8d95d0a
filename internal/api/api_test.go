package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/api"
	"github.com/foliocraft/backend/internal/middleware"
	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/router"
	"github.com/foliocraft/backend/internal/service"
	"github.com/foliocraft/backend/internal/storage"
	"github.com/foliocraft/backend/internal/testhelpers"
)

func setupAPITest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)
	authService := testhelpers.NewAuthService(db)
	analyticsService := service.NewAnalyticsService(db)

	store, err := storage.NewLocalStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(authService),
		User:        api.NewUserHandler(service.NewProfileService(db), analyticsService),
		Project:     api.NewProjectHandler(service.NewProjectService(db), analyticsService),
		Skill:       api.NewSkillHandler(service.NewSkillService(db)),
		Timeline:    api.NewTimelineHandler(service.NewTimelineService(db)),
		Testimonial: api.NewTestimonialHandler(service.NewTestimonialService(db)),
		Blog:        api.NewBlogHandler(service.NewBlogService(db)),
		Analytics:   api.NewAnalyticsHandler(analyticsService),
		Upload:      api.NewUploadHandler(service.NewUploadService(store)),
		Contact:     api.NewContactHandler(service.NewMessageService(db, analyticsService)),
		Template:    api.NewTemplateHandler(service.NewTemplateService(db)),
	}

	engine := router.Setup(handlers, router.Options{
		AllowedOrigin: "http://localhost:3000",
		Production:    false,
		AuthGuard:     middleware.AuthGuard(authService, authService),
		UploadLimit:   middleware.NewUploadRateLimiter(nil),
		ContactLimit:  middleware.NewContactRateLimiter(nil),
	})
	return engine, db
}

func doJSON(engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":          "Ada Lovelace",
		"email":         "ada@example.com",
		"password_hash": "secret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decode(t, w)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ada@example.com", user["email"])
	// The stored hash never appears in responses.
	assert.NotContains(t, w.Body.String(), "secret-pass")
	_, exposed := user["password_hash"]
	assert.False(t, exposed)
}

func TestRegisterValidation(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":          "No Email",
		"password_hash": "secret-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
}

func TestLoginWrongPasswordEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":          "Ada",
		"email":         "ada@example.com",
		"password_hash": "correct-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":         "ada@example.com",
		"password_hash": "wrong-pass",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "INVALID_CREDENTIALS", body["error_code"])
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, _ := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodPost, "/api/users/"+owner.ID.String()+"/projects", "", gin.H{"title": "X"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decode(t, w)
	assert.Equal(t, "AUTH_REQUIRED", body["error_code"])
}

func TestCreateProjectForOtherUserEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, _ := testhelpers.CreateTestUser(t, db)
	_, intruderToken := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodPost, "/api/users/"+owner.ID.String()+"/projects", intruderToken, gin.H{"title": "Not Yours"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decode(t, w)
	assert.Equal(t, "FORBIDDEN", body["error_code"])
}

func TestProjectLifecycleEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, token := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodPost, "/api/users/"+owner.ID.String()+"/projects", token, gin.H{
		"title":       "Portfolio Site",
		"description": "This very site",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	projectID := decode(t, w)["id"].(string)

	// Public read.
	w = doJSON(engine, http.MethodGet, "/api/projects/"+projectID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Partial update keeps the description.
	w = doJSON(engine, http.MethodPatch, "/api/projects/"+projectID, token, gin.H{"title": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Renamed", body["title"])
	assert.Equal(t, "This very site", body["description"])

	// Anonymous visitor comment.
	w = doJSON(engine, http.MethodPost, "/api/projects/"+projectID+"/comments", "", gin.H{"content": "Looks great"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(engine, http.MethodDelete, "/api/projects/"+projectID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(engine, http.MethodGet, "/api/projects/"+projectID, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillValidationEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, token := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodPost, "/api/users/"+owner.ID.String()+"/skills", token, gin.H{
		"name":        "Go",
		"proficiency": 150,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
}

func TestPortfolioCountsVisits(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, token := testhelpers.CreateTestUser(t, db)

	for i := 0; i < 2; i++ {
		w := doJSON(engine, http.MethodGet, "/api/users/"+owner.ID.String(), "", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(engine, http.MethodGet, "/api/analytics/"+owner.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 2, body["visit_count"])
}

func TestAnalyticsForbiddenForOthers(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, _ := testhelpers.CreateTestUser(t, db)
	_, intruderToken := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodGet, "/api/analytics/"+owner.ID.String(), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestContactEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	owner, token := testhelpers.CreateTestUser(t, db)

	w := doJSON(engine, http.MethodPost, "/api/contact/"+owner.ID.String(), "", gin.H{
		"visitor_email": "fan@example.com",
		"message":       "Let's work together",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(engine, http.MethodGet, "/api/users/"+owner.ID.String()+"/messages", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var messages []models.VisitorMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &messages))
	assert.Len(t, messages, 1)
}

func TestTemplatesEndpoint(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodGet, "/api/templates", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var templates []models.Template
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &templates))
	assert.NotEmpty(t, templates)
}

func TestInvalidIDRejected(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodGet, "/api/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])
}

func uploadRequest(t *testing.T, engine *gin.Engine, token, category, filename, contentType string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload/"+category, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUploadEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	_, token := testhelpers.CreateTestUser(t, db)

	w := uploadRequest(t, engine, token, "profile", "avatar.png", "image/png", []byte("png-bytes"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "avatar.png", body["original_name"])
	assert.True(t, strings.HasPrefix(body["url"].(string), "/uploads/profile/"))
}

func TestUploadRejectsNonImageEndpoint(t *testing.T) {
	engine, db := setupAPITest(t)
	_, token := testhelpers.CreateTestUser(t, db)

	w := uploadRequest(t, engine, token, "general", "resume.pdf", "application/pdf", []byte("pdf-bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "UPLOAD_REJECTED", body["error_code"])
}

func TestUploadRequiresAuth(t *testing.T) {
	engine, _ := setupAPITest(t)

	w := doJSON(engine, http.MethodPost, "/api/upload/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
