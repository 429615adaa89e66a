package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"collegefest_backend/internal/app"
	"collegefest_backend/internal/config"
	"collegefest_backend/internal/database"
	"collegefest_backend/internal/models"
	"collegefest_backend/internal/services"
)

type recordingMailer struct {
	mu      sync.Mutex
	sent    []string
	failAll bool
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	if m.failAll {
		return fmt.Errorf("smtp: connection refused")
	}
	return nil
}

func (m *recordingMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type fixture struct {
	router    *gin.Engine
	container *services.Container
	db        *gorm.DB
	mailer    *recordingMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin123"
	cfg.Admin.Email = "admin@example.com"
	cfg.Email.AdminEmail = "admin@example.com"
	require.NoError(t, database.SeedDefaultAdmin(db, cfg))

	mailer := &recordingMailer{}
	router, container := app.SetupRouter(cfg, db, mailer)
	return &fixture{router: router, container: container, db: db, mailer: mailer}
}

func (f *fixture) postJSON(t *testing.T, path string, payload any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	return f.doJSON(t, http.MethodPost, path, payload, headers...)
}

func (f *fixture) doJSON(t *testing.T, method, path string, payload any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *fixture) seedUsers(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		resp := f.postJSON(t, "/register-user", gin.H{
			"firstName": fmt.Sprintf("User%d", i),
			"username":  fmt.Sprintf("user%d", i),
			"password":  "password123",
			"email":     fmt.Sprintf("user%d@example.com", i),
		})
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	}
}

func (f *fixture) adminToken(t *testing.T) string {
	t.Helper()
	resp := f.postJSON(t, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestAddEventNotifiesEveryUser(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t, 3)

	resp := f.postJSON(t, "/add-event", gin.H{
		"eventName": "Hack Night",
		"eventDate": "2026-02-14",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Event added successfully", resp.Body.String())

	// The response does not wait for the fan-out
	f.container.Broadcast.Drain()

	var notifications []models.Notification
	require.NoError(t, f.db.Find(&notifications).Error)
	require.Len(t, notifications, 3)
	for _, n := range notifications {
		assert.Equal(t, "New Event Added!", n.Title)
		assert.Contains(t, n.Message, "Hack Night")
		assert.Contains(t, n.Message, "2026-02-14")
		assert.False(t, n.IsRead)
	}
	assert.Equal(t, 3, f.mailer.sentCount())
}

func TestAddEventRejectsMissingFields(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/add-event", gin.H{"eventName": "No Date"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var count int64
	require.NoError(t, f.db.Model(&models.Event{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestNotifyCategoryWaitsAndReportsCount(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t, 2)
	token := f.adminToken(t)

	resp := f.postJSON(t, "/api/categories", gin.H{"name": "Tech"},
		"Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	f.container.Broadcast.Drain()

	var category models.Category
	require.NoError(t, f.db.Where("name = ?", "Tech").First(&category).Error)

	resp = f.postJSON(t, "/api/notify-category", gin.H{
		"category_id": category.ID,
		"event_name":  "Robo Race",
		"event_date":  "2026-03-01",
	}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Notifications sent to 2 users about the new Tech event", body.Message)

	// Awaited mode: rows exist before the response
	var count int64
	require.NoError(t, f.db.Model(&models.Notification{}).
		Where("title = ?", "New Tech Event!").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestNotifyCategoryUnknownCategory(t *testing.T) {
	f := newFixture(t)
	token := f.adminToken(t)

	resp := f.postJSON(t, "/api/notify-category", gin.H{
		"category_id": 999,
		"event_name":  "Ghost Event",
	}, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid category")
}

func TestNotifyUsersReportsCount(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t, 2)
	token := f.adminToken(t)

	resp := f.postJSON(t, "/api/notify-users", gin.H{
		"type":    "general",
		"title":   "Venue Change",
		"message": "Main stage moved to the auditorium.",
	}, "Authorization", "Bearer "+token)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Notifications sent to 2 users", body.Message)

	var count int64
	require.NoError(t, f.db.Model(&models.Notification{}).
		Where("title = ?", "Venue Change").Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/api/notify-users", gin.H{
		"type": "general", "title": "t", "message": "m",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "No token provided")

	resp = f.postJSON(t, "/api/notify-users", gin.H{
		"type": "general", "title": "t", "message": "m",
	}, "Authorization", "Bearer not-a-real-token")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "Invalid token")
}

func TestAdminLoginRejectsBadPassword(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/api/admin/login", gin.H{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUserRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t, 1)

	resp := f.postJSON(t, "/login", gin.H{"username": "user1", "password": "password123"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":true`)

	resp = f.postJSON(t, "/login", gin.H{"username": "user1", "password": "nope"})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"success":false`)

	// Duplicate username is a conflict
	resp = f.postJSON(t, "/register-user", gin.H{
		"firstName": "Dup",
		"username":  "user1",
		"password":  "password123",
		"email":     "dup@example.com",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestNotificationListAndMarkRead(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t, 1)

	resp := f.postJSON(t, "/add-event", gin.H{"eventName": "Expo", "eventDate": "2026-04-01"})
	require.Equal(t, http.StatusOK, resp.Code)
	f.container.Broadcast.Drain()

	var user models.User
	require.NoError(t, f.db.Where("username = ?", "user1").First(&user).Error)

	resp = f.doJSON(t, http.MethodGet, fmt.Sprintf("/api/notifications/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &notifications))
	require.Len(t, notifications, 1)
	assert.False(t, notifications[0].IsRead)

	resp = f.doJSON(t, http.MethodGet, fmt.Sprintf("/api/notifications/%d/unread-count", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":1`)

	markURL := fmt.Sprintf("/api/notifications/%d", notifications[0].ID)
	resp = f.doJSON(t, http.MethodPut, markURL, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Notification marked as read")

	// Marking again still succeeds
	resp = f.doJSON(t, http.MethodPut, markURL, nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = f.doJSON(t, http.MethodGet, fmt.Sprintf("/api/notifications/%d/unread-count", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"count":0`)

	resp = f.doJSON(t, http.MethodPut, "/api/notifications/99999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEventRegistrationSurvivesMailFailure(t *testing.T) {
	f := newFixture(t)
	f.mailer.failAll = true

	resp := f.postJSON(t, "/register", gin.H{
		"name":      "Priya",
		"branch":    "CSE",
		"phone":     "9999999999",
		"eventType": "Technical",
		"subEvents": []string{"Coding", "Quiz"},
		"email":     "priya@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Equal(t, "Registration Successful & Emails Sent", resp.Body.String())

	var reg models.Registration
	require.NoError(t, f.db.First(&reg).Error)
	assert.Equal(t, "Priya", reg.Name)

	// Both the confirmation and the admin copy were attempted
	assert.Equal(t, 2, f.mailer.sentCount())
}

func TestRegistrationAcceptsSubEventsString(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/register", gin.H{
		"name":      "Arun",
		"branch":    "ECE",
		"phone":     "8888888888",
		"eventType": "Cultural",
		"subEvents": "Dance",
		"email":     "arun@example.com",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
}

func TestContactFormAndFeedback(t *testing.T) {
	f := newFixture(t)

	resp := f.postJSON(t, "/submit-form", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "When do gates open?",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Form submitted successfully", resp.Body.String())

	resp = f.postJSON(t, "/submit-feedback", gin.H{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "Great fest!",
		"rating":  5,
	})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "Feedback submitted successfully", resp.Body.String())
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	resp := f.doJSON(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}
