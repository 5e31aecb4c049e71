package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

var _ Checker = (*LoginChecker)(nil)

type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
	TokenUserID(ctx context.Context, token string) (string, error)
}

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (lc *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	session, err := lc.session(ctx, token)
	if err != nil {
		return false, err
	}
	return time.Since(session.CreatedAt) <= lc.ttl, nil
}

// TokenUserID resolves the user id behind a session token,
// regardless of session age.
func (lc *LoginChecker) TokenUserID(ctx context.Context, token string) (string, error) {
	session, err := lc.session(ctx, token)
	if err != nil {
		return "", err
	}
	return session.UserID, nil
}

func (lc *LoginChecker) session(ctx context.Context, token string) (Session, error) {
	cmd := lc.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNoSession
		}
		return Session{}, err
	}
	return parseSessionValue(cmd.Val())
}
