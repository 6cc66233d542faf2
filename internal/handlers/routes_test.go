package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/cache"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/warroom"
	appjwt "github.com/codementor/codementor-api/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "cm_session"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.NewMemoryKV())
	require.NoError(t, s.Initialize(context.Background()))

	collaborator := ai.NewOfflineCollaborator()
	toasts := notify.NewService(0)
	t.Cleanup(toasts.Shutdown)

	machines := appstate.NewRegistry()
	rooms := warroom.NewManager()
	t.Cleanup(rooms.Shutdown)

	tokens := appjwt.NewTokenManager(strings.Repeat("k", 32), "test", 1)
	cookie := middleware.SessionCookieConfig{Name: testCookieName, TTL: time.Hour}

	authService := services.NewAuthService(s)
	mentorService := services.NewMentorService(cache.NewMentorCache(time.Minute, time.Minute), collaborator)
	sessionService := services.NewSessionService(s)
	requestService := services.NewRequestService(s)
	problemService := services.NewProblemService(s, collaborator)
	profileService := services.NewProfileService(s, nil)
	gamificationService := services.NewGamificationService()
	reportService := services.NewReportService("", nil)

	h := Handlers{
		Auth:         NewAuthHandler(authService, machines, tokens, cookie, toasts),
		App:          NewAppHandler(authService, machines, toasts),
		Mentors:      NewMentorHandler(mentorService, toasts),
		Sessions:     NewSessionHandler(sessionService, machines, rooms),
		WarRoom:      NewWarRoomHandler(sessionService, machines, rooms, collaborator, toasts),
		Requests:     NewRequestHandler(requestService, toasts),
		Problems:     NewProblemHandler(problemService, toasts),
		Profile:      NewProfileHandler(profileService, toasts),
		Gamification: NewGamificationHandler(gamificationService, toasts),
		Reports:      NewReportHandler(reportService, toasts),
		Toasts:       NewToastHandler(toasts),
		Health:       NewHealthHandler(s, "test"),
		Admin:        NewAdminHandler(s, toasts),
	}

	return NewRouter(RouterConfig{
		ServiceName:    "codementor-api-test",
		AllowedOrigins: []string{"http://localhost:5173"},
		MaxBodySizeMB:  1,
		GeneralRPS:     1000,
		GeneralBurst:   1000,
		Tokens:         tokens,
		CookieName:     testCookieName,
	}, h)
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, role string) *http.Cookie {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    email,
		"password": "secret-pass-1",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, ck := range w.Result().Cookies() {
		if ck.Name == testCookieName {
			return ck
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/healthcheck", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestLoginRoutesMenteeToOnboarding(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "new@mentee.dev",
		"password": "secret-pass-1",
		"role":     "mentee",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		View string `json:"view"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "onboarding", resp.View)
}

func TestLoginRejectsBadPayload(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "x@y.dev"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionRequiredForProtectedRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/api/v1/mentors", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/app/state", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticatedStateAndMentors(t *testing.T) {
	r := newTestRouter(t)
	ck := login(t, r, "mentor@codementor.dev", "mentor")

	w := doJSON(r, http.MethodGet, "/api/v1/app/state", nil, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"view":"dashboard"`)

	w = doJSON(r, http.MethodGet, "/api/v1/mentors", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sarah Chen")
}

func TestOnboardingCompletesAndNavigates(t *testing.T) {
	r := newTestRouter(t)
	ck := login(t, r, "fresh@mentee.dev", "mentee")

	w := doJSON(r, http.MethodPost, "/api/v1/app/onboarding", gin.H{
		"name":      "Jordan Lee",
		"languages": []string{"Go"},
		"interests": "distributed systems",
		"level":     "beginner",
	}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"view":"dashboard"`)

	// Mentees can reach the repository view after onboarding
	w = doJSON(r, http.MethodPost, "/api/v1/app/navigate", gin.H{"view": "repository"}, ck)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// But never the mentor request inbox
	w = doJSON(r, http.MethodPost, "/api/v1/app/navigate", gin.H{"view": "requests"}, ck)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMatchWarnsWhenCollaboratorOffline(t *testing.T) {
	r := newTestRouter(t)
	ck := login(t, r, "mentor@codementor.dev", "mentor")

	w := doJSON(r, http.MethodPost, "/api/v1/mentors/match", gin.H{"query": "help with Go"}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"mode":"offline"`)

	w = doJSON(r, http.MethodGet, "/api/v1/toasts", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"severity":"warning"`)
}

func TestRequestReviewOverHTTP(t *testing.T) {
	r := newTestRouter(t)
	ck := login(t, r, "mentor@codementor.dev", "mentor")

	w := doJSON(r, http.MethodPost, "/api/v1/requests/r1/status", gin.H{"status": "accepted"}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)

	// The decision is one-shot
	w = doJSON(r, http.MethodPost, "/api/v1/requests/r1/status", gin.H{"status": "rejected"}, ck)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAdminRouteRequiresAdminRole(t *testing.T) {
	r := newTestRouter(t)

	menteeCk := login(t, r, "mentee@codementor.dev", "mentee")
	w := doJSON(r, http.MethodPost, "/api/v1/admin/storage/clear", nil, menteeCk)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminCk := login(t, r, "admin@codementor.dev", "admin")
	w = doJSON(r, http.MethodPost, "/api/v1/admin/storage/clear", nil, adminCk)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestBodySizeLimit(t *testing.T) {
	r := newTestRouter(t)
	ck := login(t, r, "big@mentee.dev", "mentee")

	huge := strings.Repeat("a", 2<<20)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/app/navigate", strings.NewReader(huge))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(ck)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
