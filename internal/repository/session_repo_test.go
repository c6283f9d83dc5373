package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bazi-insight/internal/model"
	"bazi-insight/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryRepo(ttl time.Duration) SessionRepository {
	return NewMemorySessionRepository(cache.NewCache(ttl, time.Minute), ttl)
}

func sampleSession(nickname string) (model.BirthInfo, model.Chart) {
	birth := model.BirthInfo{
		Nickname:   nickname,
		Gender:     "male",
		BirthDate:  "1990-01-01T00:30",
		BirthPlace: "Singapore",
	}
	chart := model.Chart{
		Gender:          "male",
		SolarCalendar:   "1990-01-01 00:30",
		EightCharacters: "己巳 丙子 丙寅 戊子",
		Zodiac:          "蛇",
		DayMaster:       "丙",
		DeityStars:      []string{"禄神"},
	}
	return birth, chart
}

func TestMemorySessionRepository_RoundTrip(t *testing.T) {
	repo := newMemoryRepo(time.Hour)
	ctx := context.Background()

	birth, chart := sampleSession("tester")
	id, err := repo.Create(ctx, birth, chart)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, birth, got.BirthInfo)
	assert.Equal(t, chart, got.Chart)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestMemorySessionRepository_UnknownID(t *testing.T) {
	repo := newMemoryRepo(time.Hour)

	_, err := repo.Get(context.Background(), "b1946ac9-2492-4e52-9d6f-caa29f2f0ca5")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionRepository_UniqueIDs(t *testing.T) {
	repo := newMemoryRepo(time.Hour)
	ctx := context.Background()
	birth, chart := sampleSession("tester")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := repo.Create(ctx, birth, chart)
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMemorySessionRepository_Expiry(t *testing.T) {
	repo := newMemoryRepo(10 * time.Millisecond)
	ctx := context.Background()

	birth, chart := sampleSession("tester")
	id, err := repo.Create(ctx, birth, chart)
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	_, err = repo.Get(ctx, id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionRepository_ConcurrentAccess(t *testing.T) {
	repo := newMemoryRepo(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := 0; i < len(ids); i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			birth, chart := sampleSession(fmt.Sprintf("user-%d", i))
			id, err := repo.Create(ctx, birth, chart)
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	for i, id := range ids {
		got, err := repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("user-%d", i), got.BirthInfo.Nickname)
	}
}

func TestMemorySessionRepository_Count(t *testing.T) {
	repo := newMemoryRepo(time.Hour)
	ctx := context.Background()

	counter, ok := repo.(SessionCounter)
	require.True(t, ok)

	birth, chart := sampleSession("tester")
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, birth, chart)
		require.NoError(t, err)
	}

	count, err := counter.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemorySessionRepository_CancelledContext(t *testing.T) {
	repo := newMemoryRepo(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	birth, chart := sampleSession("tester")
	_, err := repo.Create(ctx, birth, chart)
	assert.Error(t, err)

	_, err = repo.Get(ctx, "any")
	assert.Error(t, err)
}
