package auth

import "context"

var _ Checker = (*LoginTestChecker)(nil)

type LoginTestChecker struct {
	LoggedSessions map[string]string // token -> user id
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	_, ok := c.LoggedSessions[token]
	return ok, nil
}

func (c *LoginTestChecker) TokenUserID(_ context.Context, token string) (string, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return "", ErrNoSession
	}
	return userID, nil
}
