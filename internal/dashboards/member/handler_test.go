// internal/dashboards/member/handler_test.go
package member

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub-dashboard/internal/common/cache"
	"talenthub-dashboard/internal/common/config"
	apperrors "talenthub-dashboard/internal/common/errors"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/fetch"
	"talenthub-dashboard/internal/marketplace"
	"talenthub-dashboard/internal/models"
)

func createTestHandler(t *testing.T, responses map[string]string) *Handler {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	log := logger.NewTestLogger(t)
	client := marketplace.NewClient(config.UpstreamConfig{BaseURL: server.URL, Timeout: 2000}, log)
	orchestrator := fetch.NewOrchestrator(cache.NewRedisWithClient(redisClient), config.CacheConfig{
		TTL:       60000,
		KeyPrefix: "dash",
	}, log)

	handler := NewHandler(config.DashboardsConfig{
		RecentLimit:       5,
		TopN:              3,
		DefaultWindowDays: 7,
		AllowedWindows:    []int{7, 30, 90, 365},
	}, client, orchestrator, log)
	handler.now = func() time.Time {
		return time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
	}
	return handler
}

func TestExecute_MergesAndEnriches(t *testing.T) {
	handler := createTestHandler(t, map[string]string{
		"/JobApplications": `[{"_id":"a1","jobId":"j1","name":"Priya","email":"priya@mail.io","status":"pending","appliedAt":"2026-08-28T10:00:00Z"}]`,
		"/GigBids":         `{"_id":"b1","gigId":"g1","name":"Priya","email":"priya@mail.io","status":"Accepted","submittedAt":"2026-08-30T08:00:00Z"}`,
		"/Jobs/Summary":    `[{"_id":"j1","title":"Backend Engineer"}]`,
		"/Gigs/Summary":    `[{"_id":"g1","title":"Logo Design"}]`,
	})

	output, err := handler.Execute(context.Background(), &Input{Email: "priya@mail.io"})
	require.NoError(t, err)

	require.Len(t, output.Applications, 2)

	// Newest first: the gig bid outranks the job application.
	first := output.Applications[0]
	assert.Equal(t, models.TypeGig, first.Type)
	assert.Equal(t, "Logo Design", first.Title)
	assert.Equal(t, models.StatusAccepted, first.Status)
	assert.Equal(t, "4 hours ago", first.TimeAgo)

	second := output.Applications[1]
	assert.Equal(t, "Backend Engineer", second.Title)
	assert.Equal(t, models.StatusPending, second.Status)

	assert.Equal(t, 2, output.Total)
	assert.Equal(t, models.StatusCounts{Accepted: 1, Pending: 1}, output.Counts)
}

func TestExecute_SortsParsedDatesNotStrings(t *testing.T) {
	// The gig bid's offset datetime is 2026-08-30T04:00Z, newer than the
	// job application's date-only midnight despite sorting lower as a raw
	// string.
	handler := createTestHandler(t, map[string]string{
		"/JobApplications": `[{"_id":"a1","jobId":"j1","name":"DayForm","status":"pending","appliedAt":"2026-08-30"}]`,
		"/GigBids":         `[{"_id":"b1","gigId":"g1","name":"OffsetForm","status":"pending","submittedAt":"2026-08-29T23:00:00-05:00"}]`,
		"/Jobs/Summary":    `[{"_id":"j1","title":"Backend Engineer"}]`,
		"/Gigs/Summary":    `[{"_id":"g1","title":"Logo Design"}]`,
	})

	output, err := handler.Execute(context.Background(), &Input{Email: "priya@mail.io"})
	require.NoError(t, err)
	require.Len(t, output.Applications, 2)
	assert.Equal(t, "OffsetForm", output.Applications[0].Name)
	assert.Equal(t, "DayForm", output.Applications[1].Name)
}

func TestExecute_DeletedPostingKeepsApplication(t *testing.T) {
	handler := createTestHandler(t, map[string]string{
		"/JobApplications": `[{"_id":"a1","jobId":"j9","name":"Priya","status":"pending","appliedAt":"2026-08-28T10:00:00Z"}]`,
		"/Jobs/Summary":    `[]`,
	})

	output, err := handler.Execute(context.Background(), &Input{Email: "priya@mail.io"})
	require.NoError(t, err)
	require.Len(t, output.Applications, 1)
	assert.Empty(t, output.Applications[0].Title)
	assert.Equal(t, "j9", output.Applications[0].ParentID)
}

func TestExecute_NoApplicationsAnywhere(t *testing.T) {
	handler := createTestHandler(t, nil)

	output, err := handler.Execute(context.Background(), &Input{Email: "new@mail.io"})
	require.NoError(t, err)
	assert.NotNil(t, output.Applications)
	assert.Empty(t, output.Applications)
	assert.Zero(t, output.Total)
}

func TestExecute_MissingEmail(t *testing.T) {
	handler := createTestHandler(t, nil)

	_, err := handler.Execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeBadRequest, apperrors.AsStandard(err).Code)
}
