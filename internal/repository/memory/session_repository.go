package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"career-path-be/pkg/guidance/session"
)

// SessionRepository keeps session contexts in process memory with a TTL.
// The cache sweep removes expired entries in the background; IsStale guards
// the window between expiry and sweep so stale sessions read as absent.
type SessionRepository struct {
	cache   *cache.Cache
	timeout time.Duration
}

var _ session.Repository = &SessionRepository{}

func NewSessionRepository(timeout, sweepInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache:   cache.New(timeout, sweepInterval),
		timeout: timeout,
	}
}

func (r *SessionRepository) Save(ctx *session.Context) {
	r.cache.Set(ctx.ID, ctx, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*session.Context, bool) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, false
	}
	ctx := x.(*session.Context)
	if ctx.IsStale(r.timeout) {
		r.cache.Delete(sessionID)
		return nil, false
	}
	return ctx, true
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
