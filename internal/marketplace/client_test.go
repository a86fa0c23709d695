// internal/marketplace/client_test.go
package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
)

// ==========================
// Test Helpers
// ==========================

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: 2000,
		APIKey:  "test-key",
	}, logger.NewTestLogger(t))
	return client, server
}

// ==========================
// List Normalization
// ==========================

func TestListPostings_ArrayResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "owner@corp.io", r.URL.Query().Get("postedBy"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"_id":"j1","title":"Backend Engineer"},{"_id":"j2","title":"SRE"}]`))
	})

	postings, err := client.ListPostings(context.Background(), "Jobs", "postedBy", "owner@corp.io")
	require.NoError(t, err)
	require.Len(t, postings, 2)
	assert.Equal(t, "j1", postings[0].ID)
	assert.Equal(t, "Backend Engineer", postings[0].Title)
}

func TestListPostings_SingleObjectNormalized(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"_id":"j1","title":"Backend Engineer"}`))
	})

	postings, err := client.ListPostings(context.Background(), "Jobs", "postedBy", "owner@corp.io")
	require.NoError(t, err)
	require.Len(t, postings, 1)
	assert.Equal(t, "j1", postings[0].ID)
}

func TestListPostings_NotFoundIsEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	postings, err := client.ListPostings(context.Background(), "Jobs", "postedBy", "owner@corp.io")
	require.NoError(t, err)
	assert.Empty(t, postings)
}

func TestListPostings_ServerError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListPostings(context.Background(), "Jobs", "postedBy", "owner@corp.io")
	require.Error(t, err)

	stdErr := apperrors.AsStandard(err)
	assert.Equal(t, apperrors.ErrCodeUpstreamError, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestListIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Gigs/Ids", r.URL.Path)
		w.Write([]byte(`["g1","g2","g3"]`))
	})

	ids, err := client.ListIDs(context.Background(), "Gigs", "postedBy", "owner@corp.io")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2", "g3"}, ids)
}

func TestDailyStatus_MetricFieldVariants(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "g1,g2", r.URL.Query().Get("gigIds"))
		w.Write([]byte(`[{"date":"2026-08-28","bids":4},{"date":"2026-08-29","count":2}]`))
	})

	points, err := client.DailyStatus(context.Background(), "GigBids", "gigIds", "g1,g2")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, 4, points[0].Count)
	assert.Equal(t, 2, points[1].Count)
}

func TestLatestApplications_PassesLimit(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"_id":"a1","jobId":"j1","name":"Priya","appliedAt":"2026-08-29T10:00:00Z"}]`))
	})

	apps, err := client.LatestApplications(context.Background(), "JobApplications", "jobIds", "j1", 5)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "j1", apps[0].ParentID())
}

func TestSummaries(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Jobs/Summary", r.URL.Path)
		w.Write([]byte(`[{"_id":"j1","title":"Backend Engineer"}]`))
	})

	summaries, err := client.Summaries(context.Background(), "Jobs", "jobIds", "j1")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Backend Engineer", summaries[0].Title)
}

// ==========================
// Detail & Mutations
// ==========================

func TestGetPosting_NotFoundIsError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetPosting(context.Background(), "Courses", "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetPosting_Found(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "c1", r.URL.Query().Get("id"))
		w.Write([]byte(`{"_id":"c1","title":"Go Fundamentals","status":"Accepted"}`))
	})

	posting, err := client.GetPosting(context.Background(), "Courses", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Go Fundamentals", posting.Title)
}

func TestCreate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Go Fundamentals", payload["title"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"c1","title":"Go Fundamentals"}`))
	})

	body, err := client.Create(context.Background(), "Courses", map[string]interface{}{"title": "Go Fundamentals"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"c1"`)
}

func TestUpdate_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Update(context.Background(), "Courses", "missing", map[string]interface{}{"title": "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	var gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Delete(context.Background(), "JobApplications", "a1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestTransportError(t *testing.T) {
	client := NewClient(config.UpstreamConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200,
	}, logger.NewTestLogger(t))

	_, err := client.ListPostings(context.Background(), "Jobs", "postedBy", "owner@corp.io")
	require.Error(t, err)

	stdErr := apperrors.AsStandard(err)
	assert.Equal(t, apperrors.ErrCodeUpstreamTimeout, stdErr.Code)
}

// ==========================
// normalizeToArray
// ==========================

func TestNormalizeToArray(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"array passthrough", `[{"a":1}]`, `[{"a":1}]`},
		{"object wrapped", `{"a":1}`, `[{"a":1}]`},
		{"leading whitespace object", "\n  {\"a\":1}", "[\n  {\"a\":1}]"},
		{"null becomes empty", `null`, `[]`},
		{"empty body", ``, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeToArray(json.RawMessage(tt.input))
			assert.Equal(t, tt.expected, string(got))
		})
	}
}
