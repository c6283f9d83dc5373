package repository

import (
	"context"
	"errors"
	"time"

	"bazi-insight/internal/model"
	"bazi-insight/pkg/cache"

	"github.com/google/uuid"
)

// ErrSessionNotFound signals an unknown or expired analysis id. Lookups fail
// fast with it; they never block waiting for a pending write.
var ErrSessionNotFound = errors.New("analysis session not found")

// SessionRepository is the write-once store for analysis sessions. Create
// inserts exactly once under a fresh unguessable id; there is no update or
// delete operation. Implementations must keep insertion and lookup atomic
// with respect to each other under concurrent access.
type SessionRepository interface {
	Create(ctx context.Context, birth model.BirthInfo, chart model.Chart) (string, error)
	Get(ctx context.Context, id string) (*model.AnalysisSession, error)
}

// SessionCounter is implemented by stores that can report their size for
// maintenance statistics.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// memorySessionRepository keeps sessions in the shared in-memory cache. The
// cache TTL plus its janitor sweep bound the store's growth; expiry surfaces
// as ErrSessionNotFound.
type memorySessionRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewMemorySessionRepository(c cache.Cache, ttl time.Duration) SessionRepository {
	return &memorySessionRepository{cache: c, ttl: ttl}
}

func (r *memorySessionRepository) Create(ctx context.Context, birth model.BirthInfo, chart model.Chart) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// UUIDv4: 122 random bits, enough to act as a capability token.
	id := uuid.NewString()
	session := &model.AnalysisSession{
		ID:        id,
		BirthInfo: birth,
		Chart:     chart,
		CreatedAt: time.Now().UTC(),
	}
	r.cache.Set(sessionCacheKey(id), session, r.ttl)
	return id, nil
}

func (r *memorySessionRepository) Get(ctx context.Context, id string) (*model.AnalysisSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, found := r.cache.Get(sessionCacheKey(id))
	if !found {
		return nil, ErrSessionNotFound
	}

	session, ok := value.(*model.AnalysisSession)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepository) Count(ctx context.Context) (int, error) {
	return r.cache.ItemCount(), nil
}

func sessionCacheKey(id string) string {
	return "analysis_session:" + id
}
