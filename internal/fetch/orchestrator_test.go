// internal/fetch/orchestrator_test.go
package fetch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub-dashboard/internal/common/cache"
	"talenthub-dashboard/internal/common/config"
	"talenthub-dashboard/internal/common/logger"
	"talenthub-dashboard/internal/models"
)

func newTestOrchestrator(t *testing.T) (*Orchestrator, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	o := NewOrchestrator(cache.NewRedisWithClient(client), config.CacheConfig{
		TTL:       60000,
		KeyPrefix: "dash",
	}, logger.NewTestLogger(t))
	return o, mr
}

func TestCleanIDs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"drops blanks", []string{"a", "", "  ", "b"}, []string{"a", "b"}},
		{"trims padding", []string{" a ", "b\t"}, []string{"a", "b"}},
		{"all blank", []string{"", "   "}, []string{}},
		{"nil input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanIDs(tt.input))
		})
	}
}

func TestJoinIDs(t *testing.T) {
	assert.Equal(t, "a,b,c", JoinIDs([]string{"a", "b", "c"}))
	assert.Equal(t, "", JoinIDs(nil))
}

func TestCached_MissThenHit(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	calls := 0
	load := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"j1", "j2"}, nil
	}

	first, err := Cached(ctx, o, o.Key("jobs", "ids", "owner@corp.io"), load)
	require.NoError(t, err)
	assert.Equal(t, []string{"j1", "j2"}, first)
	assert.Equal(t, 1, calls)

	second, err := Cached(ctx, o, o.Key("jobs", "ids", "owner@corp.io"), load)
	require.NoError(t, err)
	assert.Equal(t, []string{"j1", "j2"}, second)
	assert.Equal(t, 1, calls, "second read should come from the cache")
}

func TestCached_TTLExpiry(t *testing.T) {
	o, mr := newTestOrchestrator(t)
	ctx := context.Background()

	calls := 0
	load := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	_, err := Cached(ctx, o, o.Key("kpi"), load)
	require.NoError(t, err)

	mr.FastForward(61 * time.Second)

	value, err := Cached(ctx, o, o.Key("kpi"), load)
	require.NoError(t, err)
	assert.Equal(t, 2, value)
	assert.Equal(t, 2, calls)
}

func TestCached_LoadErrorNotCached(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := Cached(ctx, o, o.Key("boom"), func(ctx context.Context) ([]string, error) {
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)

	value, err := Cached(ctx, o, o.Key("boom"), func(ctx context.Context) ([]string, error) {
		return []string{"ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok"}, value)
}

func TestGated_EmptyIDsSkipsLoad(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	called := false
	result, err := Gated(ctx, o, []string{"", "  "}, []interface{}{"gigbids", "daily"}, func(ctx context.Context, joined string) ([]models.DailyCount, error) {
		called = true
		return nil, nil
	})
	require.NoError(t, err)
	assert.False(t, called)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestGated_KeyIncludesIDSet(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	calls := 0
	load := func(ctx context.Context, joined string) ([]string, error) {
		calls++
		return []string{joined}, nil
	}

	first, err := Gated(ctx, o, []string{"g1", "g2"}, []interface{}{"bids"}, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1,g2"}, first)

	// Same parent set hits the cache.
	_, err = Gated(ctx, o, []string{" g1", "g2 "}, []interface{}{"bids"}, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	// A different parent set is a different key.
	second, err := Gated(ctx, o, []string{"g1", "g2", "g3"}, []interface{}{"bids"}, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"g1,g2,g3"}, second)
	assert.Equal(t, 2, calls)
}

func TestGated_NilLoadResultBecomesEmptySlice(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	result, err := Gated(ctx, o, []string{"j1"}, []interface{}{"apps"}, func(ctx context.Context, joined string) ([]models.Application, error) {
		return nil, nil
	})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestCached_RedisFailureDegradesToLoad(t *testing.T) {
	client, mock := redismock.NewClientMock()
	o := NewOrchestrator(cache.NewRedisWithClient(client), config.CacheConfig{
		TTL:       60000,
		KeyPrefix: "dash",
	}, logger.NewTestLogger(t))

	key := o.Key("jobs", "ids", "owner@corp.io")
	mock.ExpectGet(key).SetErr(errors.New("connection refused"))
	mock.ExpectSet(key, `["j1"]`, 60*time.Second).SetVal("OK")

	value, err := Cached(context.Background(), o, key, func(ctx context.Context) ([]string, error) {
		return []string{"j1"}, nil
	})
	require.NoError(t, err, "a broken cache must not fail the build")
	assert.Equal(t, []string{"j1"}, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefetchAll(t *testing.T) {
	o, _ := newTestOrchestrator(t)
	ctx := context.Background()

	calls := 0
	load := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := Cached(ctx, o, o.Key("a"), load)
	require.NoError(t, err)
	_, err = Cached(ctx, o, o.Key("b"), load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	require.NoError(t, o.RefetchAll(ctx))

	_, err = Cached(ctx, o, o.Key("a"), load)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}
