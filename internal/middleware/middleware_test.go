package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ukkm-backend/internal/config"
	"ukkm-backend/internal/models"
)

type fakeSessions map[string]models.Profile

func (f fakeSessions) RestoreSession(_ context.Context, token string) (models.Profile, bool) {
	p, ok := f[token]
	return p, ok
}

func echoProfile(w http.ResponseWriter, r *http.Request) {
	p, _ := GetProfileFromContext(r.Context())
	w.Write([]byte(p.Email))
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(fakeSessions{"good": {Email: "siti@moh.gov.my"}})
	h := m.Authenticate(http.HandlerFunc(echoProfile))

	tests := []struct {
		name   string
		header string
		url    string
		status int
		body   string
	}{
		{"missing header", "", "/api/x", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", "/api/x", http.StatusUnauthorized, ""},
		{"unknown session", "Bearer bad", "/api/x", http.StatusUnauthorized, ""},
		{"valid session", "Bearer good", "/api/x", http.StatusOK, "siti@moh.gov.my"},
		{"query token", "", "/ws?token=good", http.StatusOK, "siti@moh.gov.my"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestPanicRecovery(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := PanicRecovery(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}

func TestRequestLoggingSkipsProbes(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogging(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, 0, logs.Len())

	req := httptest.NewRequest(http.MethodPost, "/api/seizures", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.7, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.Equal(t, "10.0.0.7", fields["ip"])
}

func TestRouteTemplate(t *testing.T) {
	var got string
	r := mux.NewRouter()
	r.HandleFunc("/api/seizures/{id}", func(_ http.ResponseWriter, req *http.Request) {
		got = routeTemplate(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/seizures/4", nil))
	assert.Equal(t, "/api/seizures/{id}", got)
}

func TestMetricsRecorderHijacks(t *testing.T) {
	var hijackable bool
	r := mux.NewRouter()
	r.Use(MetricsMiddleware)
	r.HandleFunc("/ws", func(w http.ResponseWriter, _ *http.Request) {
		_, hijackable = w.(http.Hijacker)
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ws")
	require.NoError(t, err)
	resp.Body.Close()
	assert.True(t, hijackable)
}

func TestCORSExposesDownloadName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.CorsAllowedOrigins = []string{"http://localhost:5173"}
	cfg.Server.CorsAllowedMethods = []string{"GET"}

	h := NewCORS(cfg)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="laporan.csv"`)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inspections/report?format=csv", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Disposition", rec.Header().Get("Access-Control-Expose-Headers"))

	other := httptest.NewRequest(http.MethodGet, "/api/inspections", nil)
	other.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, other)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
