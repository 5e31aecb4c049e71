package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/dashboard/handlers"
	"github.com/fitdash/fitdash/internal/insights"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	method, path, token string,
	body any,
) *http.Response {
	t := s.T()

	var bodyReader io.Reader
	if body != nil {
		bodyJson, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewBuffer(bodyJson)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-FITDASH-TOKEN", token)

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeResponse[T any](s *IntegrationTestSuite, resp *http.Response) T {
	t := s.T()
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, json.Unmarshal(respBytes, &decoded), "body: %s", respBytes)
	return decoded
}

func (s *IntegrationTestSuite) TestDashboardJourney() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token, userID := s.doLoginAnonymous(ctx)

	// nothing there before the setup
	resp := s.doRequest(ctx, "GET", "/dashboard/state", token, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	setupReq := handlers.SetupRequest{
		Profile: dashboard.Profile{DisplayName: "Test User"},
		Goals: dashboard.Goals{
			TargetWeightKg:       80,
			TargetBodyFatPercent: 15,
			GoalType:             dashboard.GoalFatLoss,
		},
		Initial: dashboard.TrendPoint{
			Date:           time.Now().UTC(),
			WeightKg:       88.5,
			BodyFatPercent: 22,
		},
	}
	resp = s.doRequest(ctx, "POST", "/dashboard/setup", token, setupReq)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state := decodeResponse[dashboard.UserState](s, resp)
	assert.Equal(t, "Test User", state.Profile.DisplayName)
	assert.Len(t, state.TrendPoints, 1)

	// the state document eventually lands in postgres
	stateKey := fmt.Sprintf("fitdash-states/%s", userID)
	require.Eventually(t, func() bool {
		var count int
		err := s.DB.QueryRowContext(
			ctx,
			"SELECT COUNT(*) FROM user_state WHERE key = $1",
			stateKey,
		).Scan(&count)
		return err == nil && count == 1
	}, 5*time.Second, 100*time.Millisecond)

	resp = s.doRequest(ctx, "POST", "/dashboard/workouts", token, dashboard.WorkoutRecord{
		Date:            time.Now().UTC(),
		ExerciseName:    "Squat",
		Sets:            5,
		Reps:            5,
		WeightKg:        100,
		DurationMinutes: 45,
		CaloriesBurned:  300,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	workout := decodeResponse[dashboard.WorkoutRecord](s, resp)
	assert.NotEmpty(t, workout.ID)
	assert.Equal(t, "Squat", workout.ExerciseName)

	resp = s.doRequest(ctx, "POST", "/dashboard/nutrition", token, dashboard.NutritionRecord{
		Date:          time.Now().UTC(),
		TotalCalories: 2100,
		ProteinGrams:  150,
		CarbGrams:     200,
		FatGrams:      70,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	nutrition := decodeResponse[dashboard.NutritionRecord](s, resp)
	assert.NotEmpty(t, nutrition.ID)

	resp = s.doRequest(ctx, "POST", "/dashboard/habits", token, dashboard.HabitRecord{
		Date:        time.Now().UTC(),
		Steps:       9000,
		WaterLiters: 2.5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = s.doRequest(ctx, "GET", "/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decodeResponse[handlers.SummaryResponse](s, resp)
	assert.Equal(t, 300, summary.TotalCaloriesBurned)
	assert.Equal(t, 1, summary.Streak)

	resp = s.doRequest(ctx, "GET", "/dashboard/charts/macros", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	macros := decodeResponse[[]map[string]any](s, resp)
	require.Len(t, macros, 3)

	resp = s.doRequest(ctx, "GET", "/dashboard/charts/nope", token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	// insights go through the canned generation backend
	resp = s.doRequest(ctx, "POST", "/dashboard/insights", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	insightsResp := decodeResponse[handlers.InsightsResponse](s, resp)
	require.Len(t, insightsResp.Insights, 2)
	assert.Equal(t, "Keep up the good work.", insightsResp.Insights[0])
	assert.NotContains(t, insightsResp.Insights, insights.FallbackInsight)

	// delete needs an explicit confirmation
	resp = s.doRequest(ctx, "DELETE", "/dashboard/workouts/"+workout.ID, token, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	resp = s.doRequest(ctx, "DELETE", "/dashboard/workouts/"+workout.ID+"?confirm=true", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decodeResponse[handlers.DeleteRecordResponse](s, resp)
	assert.Equal(t, workout.ID, deleted.DeletedID)

	resp = s.doRequest(ctx, "GET", "/dashboard/state", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	state = decodeResponse[dashboard.UserState](s, resp)
	assert.Empty(t, state.Workouts)
	assert.Len(t, state.Nutrition, 1)
	assert.Len(t, state.Habits, 1)

	// a second anonymous user sees none of it
	otherToken, _ := s.doLoginAnonymous(ctx)
	resp = s.doRequest(ctx, "GET", "/dashboard/state", otherToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}

func (s *IntegrationTestSuite) TestDashboardUnauthorized() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	resp := s.doRequest(ctx, "GET", "/dashboard/state", "not-a-real-token", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.NoError(t, resp.Body.Close())
}
