package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mathieu/brandscope/internal/classify"
	"github.com/mathieu/brandscope/internal/extract"
	"github.com/mathieu/brandscope/internal/fetch"
	"github.com/mathieu/brandscope/internal/jobs"
)

// offlineFetcher always exhausts, pushing the pipeline into URL-only
// derivation. Good enough for exercising the HTTP surface.
type offlineFetcher struct{}

func (offlineFetcher) Fetch(_ context.Context, url string) *fetch.Result {
	return &fetch.Result{URL: url, Strategy: fetch.StrategyNone}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pipeline := extract.NewPipeline(offlineFetcher{}, classify.New(classify.DefaultIndustries()), logger)
	orchestrator := jobs.New(jobs.NewMemStore(), pipeline, nil, logger)
	return New(0, orchestrator, prometheus.NewRegistry(), logger)
}

func doRequest(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleExtract_Success(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/extract",
		`{"url":"https://my-cool-brand.example.com","kind":"profile"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JobID  string          `json:"jobId"`
		Status string          `json:"status"`
		Result json.RawMessage `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.JobID)
	assert.Equal(t, "completed", resp.Status)

	var result struct {
		Name     string `json:"name"`
		Industry string `json:"industry"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "My Cool Brand", result.Name)
	assert.Equal(t, "Autre", result.Industry)
}

func TestHandleExtract_InvalidJSON(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/extract", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtract_UnknownKind(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/extract",
		`{"url":"https://brandx.com","kind":"pricing"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleExtract_MissingURL(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/extract", `{"kind":"profile"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetJob_RoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/extract",
		`{"url":"https://brandx.com","kind":"news"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		JobID string `json:"jobId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	rec = doRequest(t, s, http.MethodGet, "/api/jobs/"+resp.JobID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var job struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Kind   string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, resp.JobID, job.ID)
	assert.Equal(t, "completed", job.Status)
	assert.Equal(t, "news", job.Kind)
}

func TestHandleGetJob_NotFound(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/jobs/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpointExposed(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
