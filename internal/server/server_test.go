package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gsabatini/match-engine/internal/engine"
	"github.com/gsabatini/match-engine/internal/types"
	"github.com/gsabatini/match-engine/internal/weights"
)

// newTestServer builds a server without a database. Record and match
// endpoints respond 503; evaluation endpoints are fully functional.
func newTestServer() *Server {
	registry := weights.NewRegistry()
	eng, _ := engine.New(registry)
	return &Server{
		engine:   eng,
		registry: registry,
		log:      zap.NewNop(),
	}
}

func fptr(v float64) *float64 { return &v }

func testCandidate() *types.CandidateRecord {
	return &types.CandidateRecord{
		ID:              "11111111-1111-1111-1111-111111111111",
		FullName:        "Test Candidate",
		CurrentTitle:    "Backend Developer",
		YearsExperience: 5,
		Skills:          []string{"go", "postgresql", "docker"},
		CurrentSalary:   fptr(45000),
		DesiredSalary:   fptr(52000),
		City:            "Milano",
		Region:          "Lombardia",
		Sectors:         []string{"fintech"},
		ListeningReason: types.ReasonNoGrowth,
		Status:          types.StatusActive,
	}
}

func testPosition(id, title string) *types.PositionRecord {
	return &types.PositionRecord{
		ID:             id,
		Title:          title,
		Company:        "Acme",
		RequiredSkills: []string{"go", "postgresql"},
		YearsMin:       3,
		YearsMax:       8,
		SalaryMin:      fptr(48000),
		SalaryMax:      fptr(60000),
		City:           "Milano",
		Region:         "Lombardia",
		Sector:         "fintech",
		WorkMode:       types.WorkModeHybrid,
		Attributes:     []string{types.AttrGrowth},
	}
}

// TestHealthEndpoint tests the /health endpoint
func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

// TestRequestIDMiddleware_GeneratesID verifies a fresh ID is assigned
func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	s := newTestServer()

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.withRequestID(inner).ServeHTTP(w, req)

	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get("X-Request-ID"))
}

// TestRequestIDMiddleware_HonorsIncomingHeader verifies caller IDs pass through
func TestRequestIDMiddleware_HonorsIncomingHeader(t *testing.T) {
	s := newTestServer()

	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id-42")
	w := httptest.NewRecorder()

	s.withRequestID(inner).ServeHTTP(w, req)

	assert.Equal(t, "caller-id-42", seen)
	assert.Equal(t, "caller-id-42", w.Header().Get("X-Request-ID"))
}

// TestCORSMiddleware verifies preflight handling and headers
func TestCORSMiddleware(t *testing.T) {
	s := newTestServer()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/evaluate", nil)
		w := httptest.NewRecorder()

		s.withCORS(inner).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("passthrough", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/evaluate", nil)
		w := httptest.NewRecorder()

		s.withCORS(inner).ServeHTTP(w, req)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

// TestRequestID_EmptyContext verifies the accessor tolerates plain contexts
func TestRequestID_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, RequestID(req.Context()))
}
