package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"career-path-be/internal/pkg/logger"
	"career-path-be/pkg/guidance/session"
)

const keyPrefix = "guidance:session:"

// SessionRepository stores session contexts in Redis so multiple instances
// can share them. The key TTL enforces the inactivity timeout; every Save
// refreshes it.
type SessionRepository struct {
	rdb     *redis.Client
	timeout time.Duration
	log     logger.ILogger
}

var _ session.Repository = &SessionRepository{}

func NewSessionRepository(rdb *redis.Client, timeout time.Duration, log logger.ILogger) *SessionRepository {
	return &SessionRepository{
		rdb:     rdb,
		timeout: timeout,
		log:     log,
	}
}

func (r *SessionRepository) Save(sess *session.Context) {
	payload, err := json.Marshal(sess)
	if err != nil {
		r.log.Error("session", "failed to marshal session", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return
	}

	if err := r.rdb.Set(context.Background(), keyPrefix+sess.ID, payload, r.timeout).Err(); err != nil {
		r.log.Error("session", "failed to save session to redis", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
	}
}

func (r *SessionRepository) Get(sessionID string) (*session.Context, bool) {
	payload, err := r.rdb.Get(context.Background(), keyPrefix+sessionID).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("session", "failed to read session from redis", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
		return nil, false
	}

	var sess session.Context
	if err := json.Unmarshal(payload, &sess); err != nil {
		r.log.Warn("session", "dropping corrupt session payload", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		r.Delete(sessionID)
		return nil, false
	}

	if sess.IsStale(r.timeout) {
		r.Delete(sessionID)
		return nil, false
	}

	return &sess, true
}

func (r *SessionRepository) Delete(sessionID string) {
	if err := r.rdb.Del(context.Background(), keyPrefix+sessionID).Err(); err != nil {
		r.log.Warn("session", "failed to delete session from redis", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}
