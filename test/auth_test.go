package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/fitdash/fitdash/internal/misc"

	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doLogin(ctx context.Context) string {
	t := s.T()
	loginReqJson, err := json.Marshal(misc.LoginRequest{
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login", serverEndpoint), bytes.NewBuffer(loginReqJson))
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotEmpty(t, respBytes)

	var loginResp misc.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))

	return loginResp.Token
}

// doLoginAnonymous creates a fresh anonymous identity and
// returns its session token together with the new user id.
func (s *IntegrationTestSuite) doLoginAnonymous(ctx context.Context) (token, userID string) {
	t := s.T()
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/a/login/anonymous", serverEndpoint), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var loginResp misc.LoginResponse
	require.NoError(t, json.Unmarshal(respBytes, &loginResp))
	require.NotEmpty(t, loginResp.Token)
	require.NotEmpty(t, loginResp.UserID)

	return loginResp.Token, loginResp.UserID
}
