package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"
	"github.com/fitdash/fitdash/pkg"

	log "github.com/sirupsen/logrus"
)

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

// handleGenerateInsights regenerates the insights list from the current
// state and stores it. Generation failures never surface as errors here,
// the insights service degrades to its fixed fallback message instead.
func (handler *Handler) handleGenerateInsights(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.generateInsights")
	defer span.End()

	userID := middleware.UserIDFromRequest(r)

	state, err := handler.service.State(ctx, userID)
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("generate insights, get state: %s", err)
		http.Error(w, "generate insights failed", http.StatusInternalServerError)
		return
	}

	generatedInsights := handler.insights.Generate(ctx, state)
	if generatedInsights == nil {
		// not enough logged data, leave the stored insights as they are
		insightsJson, _ := json.Marshal(InsightsResponse{Insights: state.Insights})
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, insightsJson)
		return
	}

	if err := handler.service.ReplaceInsights(ctx, userID, generatedInsights); err != nil {
		log.Errorf("generate insights, store: %s", err)
		http.Error(w, "generate insights failed", http.StatusInternalServerError)
		return
	}

	insightsJson, err := json.Marshal(InsightsResponse{Insights: generatedInsights})
	if err != nil {
		log.Errorf("marshal insights: %s", err)
		http.Error(w, "generate insights failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, insightsJson)
}
