package handlers

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"slices"
	"time"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/dashboard/analytics"
	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"
	"github.com/fitdash/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type SummaryResponse struct {
	analytics.Summary
	Streak int `json:"streak"`
}

func (handler *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.summary")
	defer span.End()

	state, err := handler.service.State(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("dashboard summary failed: %s", err)
		http.Error(w, "dashboard summary failed", http.StatusInternalServerError)
		return
	}

	workoutDates := make([]time.Time, 0, len(state.Workouts))
	for _, workout := range state.Workouts {
		workoutDates = append(workoutDates, workout.Date)
	}

	summaryResp := SummaryResponse{
		Summary: analytics.Summarize(state.Workouts, state.Nutrition),
		Streak:  analytics.CurrentStreak(workoutDates, time.Now()),
	}

	summaryJson, err := json.Marshal(summaryResp)
	if err != nil {
		log.Errorf("marshal dashboard summary: %s", err)
		http.Error(w, "dashboard summary failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, summaryJson)
}

func (handler *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.chart")
	defer span.End()

	chartName := mux.Vars(r)["chart"]
	span.SetAttributes(attribute.String("chart.name", chartName))

	state, err := handler.service.State(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("dashboard chart failed: %s", err)
		http.Error(w, "dashboard chart failed", http.StatusInternalServerError)
		return
	}

	var chartData any
	switch chartName {
	case "frequency":
		chartData = collectChart(analytics.WorkoutFrequency(state.Workouts))
	case "calories":
		chartData = collectChart(analytics.CalorieSeries(state.Nutrition, state.Workouts))
	case "macros":
		chartData = collectChart(analytics.MacroBreakdown(state.Nutrition))
	case "weight":
		chartData = collectChart(analytics.WeightTrend(state.TrendPoints, state.Goals.TargetWeightKg))
	default:
		http.Error(w, "unknown chart: "+chartName, http.StatusBadRequest)
		return
	}

	chartJson, err := json.Marshal(chartData)
	if err != nil {
		log.Errorf("marshal chart %s: %s", chartName, err)
		http.Error(w, "dashboard chart failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, chartJson)
}

// collectChart materializes a chart sequence, empty slice for empty input
// so the client always gets a JSON array.
func collectChart[T any](seq iter.Seq[T]) []T {
	points := slices.Collect(seq)
	if points == nil {
		points = []T{}
	}
	return points
}
