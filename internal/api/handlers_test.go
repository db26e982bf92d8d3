// internal/api/handlers_test.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington-activities/internal/common/config"
	"mergington-activities/internal/common/logger"
	"mergington-activities/internal/common/observability"
	"mergington-activities/internal/registry"
)

// ==========================
// Test Helper Functions
// ==========================

var (
	obsOnce     sync.Once
	testObs     *observability.Observability
	testTracing *observability.Tracing
)

func createTestServer(t *testing.T) http.Handler {
	obsOnce.Do(func() {
		testObs = observability.New("activities-server-test")
		testTracing = observability.NewTracing("activities-server-test", "", false)
	})

	reg, err := registry.Load("", logger.NewTestLogger(t))
	require.NoError(t, err)

	srv := NewServer(config.ServerConfig{
		Host:      "127.0.0.1",
		Port:      8080,
		StaticDir: t.TempDir(),
	}, reg, logger.NewTestLogger(t), testObs, testTracing)
	return srv.Handler()
}

func doRequest(t *testing.T, handler http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func signupURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/signup?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
}

func unregisterURL(activity, email string) string {
	return fmt.Sprintf("/activities/%s/unregister?email=%s",
		url.PathEscape(activity), url.QueryEscape(email))
}

// ==========================
// GET /activities
// ==========================

func TestListActivities(t *testing.T) {
	handler := createTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/activities")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var activities map[string]struct {
		Description     string   `json:"description"`
		Schedule        string   `json:"schedule"`
		MaxParticipants int      `json:"max_participants"`
		Participants    []string `json:"participants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	assert.Len(t, activities, 9)

	chess, exists := activities["Chess Club"]
	require.True(t, exists)
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

// ==========================
// POST /activities/{name}/signup
// ==========================

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "successful signup",
			target:         signupURL("Chess Club", "test@mergington.edu"),
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Signed up test@mergington.edu for Chess Club",
		},
		{
			name:           "unknown activity",
			target:         signupURL("Nonexistent Activity", "test@mergington.edu"),
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "pre-seeded duplicate",
			target:         signupURL("Chess Club", "michael@mergington.edu"),
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "Student already signed up for this activity",
		},
		{
			name:           "missing email",
			target:         "/activities/Chess%20Club/signup",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "email query parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestServer(t)

			rec := doRequest(t, handler, http.MethodPost, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedValue, body[tt.expectedKey])
		})
	}
}

func TestSignup_DuplicateAfterFirstSignup(t *testing.T) {
	handler := createTestServer(t)

	rec := doRequest(t, handler, http.MethodPost, signupURL("Chess Club", "test@mergington.edu"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, handler, http.MethodPost, signupURL("Chess Club", "test@mergington.edu"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Student already signed up for this activity", decodeBody(t, rec)["detail"])
}

// ==========================
// DELETE /activities/{name}/unregister
// ==========================

func TestUnregister(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "successful unregister",
			target:         unregisterURL("Chess Club", "michael@mergington.edu"),
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Unregistered michael@mergington.edu from Chess Club",
		},
		{
			name:           "unknown activity",
			target:         unregisterURL("Nonexistent Activity", "test@mergington.edu"),
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "not registered",
			target:         unregisterURL("Chess Club", "notregistered@mergington.edu"),
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "Student is not registered for this activity",
		},
		{
			name:           "missing email",
			target:         "/activities/Chess%20Club/unregister",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "email query parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := createTestServer(t)

			rec := doRequest(t, handler, http.MethodDelete, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, tt.expectedValue, body[tt.expectedKey])
		})
	}
}

// ==========================
// Root and Operational Routes
// ==========================

func TestRoot_RedirectsToStaticIndex(t *testing.T) {
	handler := createTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "/static/index.html", rec.Header().Get("Location"))
}

func TestOperationalEndpoints(t *testing.T) {
	handler := createTestServer(t)

	for _, target := range []string{"/health", "/ready", "/metrics"} {
		rec := doRequest(t, handler, http.MethodGet, target)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", target)
	}
}

// ==========================
// Request ID Middleware
// ==========================

func TestInstrument_SetsRequestID(t *testing.T) {
	handler := createTestServer(t)

	rec := doRequest(t, handler, http.MethodGet, "/activities")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	other := doRequest(t, handler, http.MethodGet, "/activities")
	assert.NotEqual(t, rec.Header().Get("X-Request-Id"), other.Header().Get("X-Request-Id"))
}
