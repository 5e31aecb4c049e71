package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fitdash/fitdash/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "fitdash-session||"
	tokensSetKey     = "fitdash-sessions"
	sessionValueSep  = "||"
)

var (
	ErrWrongUsername = errors.New("wrong username")
	ErrWrongPassword = errors.New("wrong password")
	ErrNoSession     = errors.New("no session")
)

type Admin struct {
	Username     string
	PasswordHash string
}

type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	// same for user id generation on anonymous sign in
	NewUserIDFunc func() string
}

func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		NewUserIDFunc:  uuid.NewString,
	}
}

// Login authenticates the admin user and creates a session for it.
func (as *Service) Login(
	ctx context.Context,
	admin Admin,
	username, password string,
	createdAt time.Time,
) (Session, error) {
	if username != admin.Username {
		return Session{}, ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(password, admin.PasswordHash) {
		return Session{}, ErrWrongPassword
	}
	return as.createSession(ctx, username, createdAt)
}

// SignInAnonymous creates a fresh anonymous user id with a session for it.
// Anything the user logs afterwards hangs off that id.
func (as *Service) SignInAnonymous(ctx context.Context, createdAt time.Time) (Session, error) {
	return as.createSession(ctx, as.NewUserIDFunc(), createdAt)
}

func (as *Service) createSession(ctx context.Context, userID string, createdAt time.Time) (Session, error) {
	token, err := as.RandStringFunc(35)
	if err != nil {
		return Session{}, err
	}

	sessionKey := sessionKeyPrefix + token
	sessionValue := userID + sessionValueSep + strconv.FormatInt(createdAt.Unix(), 10)
	if err := as.redisClient.Set(ctx, sessionKey, sessionValue, 0).Err(); err != nil {
		return Session{}, err
	}

	// add token to list of sessions
	if err := as.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return Session{}, err
	}

	return Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: createdAt,
	}, nil
}

func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := as.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return false, ErrNoSession
		}
		return false, err
	}

	session, err := parseSessionValue(cmd.Val())
	if err != nil {
		return false, err
	}

	if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return false, err
	}

	return session.CreatedAt.Unix() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Warnln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Warnf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		sessionKey := sessionKeyPrefix + token
		cmd := as.redisClient.Get(ctx, sessionKey)
		if err := cmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := parseSessionValue(cmd.Val())
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		if time.Since(session.CreatedAt) > as.ttl {
			log.Warnf("=>\twill clean the session with token: %s", token)
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		sessionKey := sessionKeyPrefix + token
		if err := as.redisClient.Del(ctx, sessionKey).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
}

func parseSessionValue(value string) (Session, error) {
	userID, createdAtStr, found := strings.Cut(value, sessionValueSep)
	if !found {
		return Session{}, fmt.Errorf("malformed session value: %q", value)
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return Session{}, fmt.Errorf("malformed session created at: %w", err)
	}
	return Session{
		UserID:    userID,
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}
