package insights

import (
	"context"
	"time"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/dashboard/analytics"
	"github.com/fitdash/fitdash/internal/telemetry/metrics"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=insights_test

// FallbackInsight replaces the insights list when generation fails in
// any way. Failures never propagate to the caller.
const FallbackInsight = "Sorry, insights could not be generated right now. Keep logging your workouts and try again later."

type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	generator      textGenerator
	metricsManager *metrics.Manager
	// injectable for deterministic streak tests
	NowFunc func() time.Time
}

func NewService(generator textGenerator, metricsManager *metrics.Manager) *Service {
	return &Service{
		generator:      generator,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

// Generate produces the new insights list for the given state. Returns nil
// when there is not enough logged data to say anything useful, and the
// fixed fallback insight when generation or parsing fails.
func (s *Service) Generate(ctx context.Context, state *dashboard.UserState) []string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "insights.generate")
	defer span.End()

	if len(state.Workouts) < 1 || len(state.Nutrition) < 1 {
		log.Tracef("insights generate: not enough data, skipping")
		return nil
	}

	summary := analytics.Summarize(state.Workouts, state.Nutrition)
	workoutDates := make([]time.Time, 0, len(state.Workouts))
	for _, w := range state.Workouts {
		workoutDates = append(workoutDates, w.Date)
	}
	streak := analytics.CurrentStreak(workoutDates, s.NowFunc())

	prompt := BuildPrompt(state, summary, streak)

	startedAt := time.Now()
	generatedText, err := s.generator.GenerateText(ctx, prompt)
	s.metricsManager.HistInsightsGenDuration.Observe(time.Since(startedAt).Seconds())
	if err != nil {
		log.Errorf("insights generate: %s", err)
		s.metricsManager.CounterInsightsFallbacks.Inc()
		return []string{FallbackInsight}
	}

	parsedInsights, err := ParseInsights(generatedText)
	if err != nil {
		log.Errorf("insights generate, parse: %s", err)
		s.metricsManager.CounterInsightsFallbacks.Inc()
		return []string{FallbackInsight}
	}

	s.metricsManager.CounterInsightsGenerated.Inc()
	return parsedInsights
}
