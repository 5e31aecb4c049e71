package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/middleware"
	"github.com/fitdash/fitdash/internal/report"
	"github.com/fitdash/fitdash/internal/telemetry/metrics"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"
	"github.com/fitdash/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=handlers_test

type dashboardService interface {
	Setup(
		ctx context.Context,
		userID string,
		profile dashboard.Profile,
		goals dashboard.Goals,
		initial dashboard.TrendPoint,
	) (*dashboard.UserState, error)
	State(ctx context.Context, userID string) (*dashboard.UserState, error)
	LogWorkout(ctx context.Context, userID string, record dashboard.WorkoutRecord) (*dashboard.WorkoutRecord, error)
	DeleteWorkout(ctx context.Context, userID, recordID string) error
	LogNutrition(ctx context.Context, userID string, record dashboard.NutritionRecord) (*dashboard.NutritionRecord, error)
	DeleteNutrition(ctx context.Context, userID, recordID string) error
	AddTrendPoint(ctx context.Context, userID string, point dashboard.TrendPoint) error
	LogHabit(ctx context.Context, userID string, record dashboard.HabitRecord) error
	UpdateGoals(ctx context.Context, userID string, goals dashboard.Goals) error
	ReplaceInsights(ctx context.Context, userID string, insights []string) error
	Watch(userID string) (<-chan *dashboard.UserState, func())
}

type insightsGenerator interface {
	Generate(ctx context.Context, state *dashboard.UserState) []string
}

type reportExporter interface {
	Export(ctx context.Context, state *dashboard.UserState, charts []report.ChartImage) (*report.Export, error)
}

type reportBackup interface {
	BackupReport(ctx context.Context, export *report.Export) error
}

type SetupRequest struct {
	Profile dashboard.Profile    `json:"profile"`
	Goals   dashboard.Goals      `json:"goals"`
	Initial dashboard.TrendPoint `json:"initial"`
}

type DeleteRecordResponse struct {
	DeletedID string `json:"deletedId"`
}

type Handler struct {
	service        dashboardService
	insights       insightsGenerator
	exporter       reportExporter
	backup         reportBackup // nil when report backup is not configured
	metricsManager *metrics.Manager
}

func NewHandler(
	service dashboardService,
	insights insightsGenerator,
	exporter reportExporter,
	backup reportBackup,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		service:        service,
		insights:       insights,
		exporter:       exporter,
		backup:         backup,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	insightsRateLimitPerMin int,
) {
	dashRouter := mainRouter.PathPrefix("/dashboard").Subrouter()
	dashRouter.HandleFunc("/setup", handler.handleSetup).Methods("POST", "OPTIONS").Name("dashboard-setup")
	dashRouter.HandleFunc("/state", handler.handleGetState).Methods("GET", "OPTIONS").Name("dashboard-state")

	dashRouter.HandleFunc("/workouts", handler.handleLogWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	dashRouter.HandleFunc("/workouts/{id}", handler.handleDeleteWorkout).Methods("DELETE", "OPTIONS").Name("delete-workout")
	dashRouter.HandleFunc("/nutrition", handler.handleLogNutrition).Methods("POST", "OPTIONS").Name("new-nutrition")
	dashRouter.HandleFunc("/nutrition/{id}", handler.handleDeleteNutrition).Methods("DELETE", "OPTIONS").Name("delete-nutrition")
	dashRouter.HandleFunc("/trend", handler.handleAddTrendPoint).Methods("POST", "OPTIONS").Name("new-trend-point")
	dashRouter.HandleFunc("/habits", handler.handleLogHabit).Methods("POST", "OPTIONS").Name("new-habit")
	dashRouter.HandleFunc("/goals", handler.handleUpdateGoals).Methods("PUT", "OPTIONS").Name("update-goals")

	dashRouter.HandleFunc("/summary", handler.handleSummary).Methods("GET", "OPTIONS").Name("dashboard-summary")
	dashRouter.HandleFunc("/charts/{chart}", handler.handleChart).Methods("GET", "OPTIONS").Name("dashboard-chart")

	dashRouter.HandleFunc("/report", handler.handleExportReport).Methods("POST", "OPTIONS").Name("export-report")
	dashRouter.HandleFunc("/events", handler.handleEvents).Methods("GET").Name("dashboard-events")

	// rate limit the insights endpoint to prevent model quota abuse
	insightsRouter := mainRouter.PathPrefix("/dashboard/insights").Subrouter()
	insightsRouter.HandleFunc("", handler.handleGenerateInsights).Methods("POST", "OPTIONS").Name("generate-insights")
	insightsRouter.Use(middleware.RateLimit(rateLimiter, "insights", insightsRateLimitPerMin, metricsManager))
}

func (handler *Handler) handleSetup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.setup")
	defer span.End()

	var setupReq SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&setupReq); err != nil {
		log.Tracef("dashboard setup, unmarshal json params: %s", err)
		http.Error(w, "dashboard setup failed", http.StatusBadRequest)
		return
	}

	state, err := handler.service.Setup(
		ctx, middleware.UserIDFromRequest(r),
		setupReq.Profile, setupReq.Goals, setupReq.Initial,
	)
	if err != nil {
		log.Errorf("dashboard setup failed: %s", err)
		http.Error(w, "dashboard setup failed", http.StatusBadRequest)
		return
	}

	handler.writeStateJSON(w, state)
}

func (handler *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.getState")
	defer span.End()

	state, err := handler.service.State(ctx, middleware.UserIDFromRequest(r))
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("get dashboard state failed: %s", err)
		http.Error(w, "get dashboard state failed", http.StatusInternalServerError)
		return
	}

	handler.writeStateJSON(w, state)
}

func (handler *Handler) handleLogWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.logWorkout")
	defer span.End()

	var record dashboard.WorkoutRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("log workout, unmarshal json params: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	addedRecord, err := handler.service.LogWorkout(ctx, middleware.UserIDFromRequest(r), record)
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("log workout failed: %s", err)
		http.Error(w, "log workout failed", http.StatusBadRequest)
		return
	}

	handler.metricsManager.CounterWorkoutsLogged.Inc()

	recordJson, err := json.Marshal(addedRecord)
	if err != nil {
		log.Errorf("marshal logged workout: %s", err)
		http.Error(w, "log workout failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func (handler *Handler) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.deleteWorkout")
	defer span.End()

	recordID, ok := handler.confirmedDeleteID(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteWorkout(ctx, middleware.UserIDFromRequest(r), recordID); err != nil {
		handler.writeDeleteError(w, "workout", err)
		return
	}

	deletedJson, _ := json.Marshal(DeleteRecordResponse{DeletedID: recordID})
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deletedJson)
}

func (handler *Handler) handleLogNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.logNutrition")
	defer span.End()

	var record dashboard.NutritionRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("log nutrition, unmarshal json params: %s", err)
		http.Error(w, "log nutrition failed", http.StatusBadRequest)
		return
	}

	addedRecord, err := handler.service.LogNutrition(ctx, middleware.UserIDFromRequest(r), record)
	if err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("log nutrition failed: %s", err)
		http.Error(w, "log nutrition failed", http.StatusBadRequest)
		return
	}

	handler.metricsManager.CounterNutritionLogged.Inc()

	recordJson, err := json.Marshal(addedRecord)
	if err != nil {
		log.Errorf("marshal logged nutrition: %s", err)
		http.Error(w, "log nutrition failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, recordJson, http.StatusCreated)
}

func (handler *Handler) handleDeleteNutrition(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.deleteNutrition")
	defer span.End()

	recordID, ok := handler.confirmedDeleteID(w, r)
	if !ok {
		return
	}

	if err := handler.service.DeleteNutrition(ctx, middleware.UserIDFromRequest(r), recordID); err != nil {
		handler.writeDeleteError(w, "nutrition record", err)
		return
	}

	deletedJson, _ := json.Marshal(DeleteRecordResponse{DeletedID: recordID})
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, deletedJson)
}

func (handler *Handler) handleAddTrendPoint(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.addTrendPoint")
	defer span.End()

	var point dashboard.TrendPoint
	if err := json.NewDecoder(r.Body).Decode(&point); err != nil {
		log.Tracef("add trend point, unmarshal json params: %s", err)
		http.Error(w, "add trend point failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.AddTrendPoint(ctx, middleware.UserIDFromRequest(r), point); err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("add trend point failed: %s", err)
		http.Error(w, "add trend point failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "added")
}

func (handler *Handler) handleLogHabit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.logHabit")
	defer span.End()

	var record dashboard.HabitRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Tracef("log habit, unmarshal json params: %s", err)
		http.Error(w, "log habit failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.LogHabit(ctx, middleware.UserIDFromRequest(r), record); err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("log habit failed: %s", err)
		http.Error(w, "log habit failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "added")
}

func (handler *Handler) handleUpdateGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "dashboardHandler.updateGoals")
	defer span.End()

	var goals dashboard.Goals
	if err := json.NewDecoder(r.Body).Decode(&goals); err != nil {
		log.Tracef("update goals, unmarshal json params: %s", err)
		http.Error(w, "update goals failed", http.StatusBadRequest)
		return
	}

	if err := handler.service.UpdateGoals(ctx, middleware.UserIDFromRequest(r), goals); err != nil {
		if errors.Is(err, dashboard.ErrStateNotFound) {
			http.Error(w, "dashboard not set up", http.StatusNotFound)
			return
		}
		log.Errorf("update goals failed: %s", err)
		http.Error(w, "update goals failed", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "updated")
}

// confirmedDeleteID enforces the explicit delete confirmation guard.
func (handler *Handler) confirmedDeleteID(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "delete not confirmed", http.StatusBadRequest)
		return "", false
	}

	vars := mux.Vars(r)
	recordID := vars["id"]
	if recordID == "" {
		http.Error(w, "error, record ID empty", http.StatusBadRequest)
		return "", false
	}
	return recordID, true
}

func (handler *Handler) writeDeleteError(w http.ResponseWriter, what string, err error) {
	switch {
	case errors.Is(err, dashboard.ErrStateNotFound):
		http.Error(w, "dashboard not set up", http.StatusNotFound)
	case errors.Is(err, dashboard.ErrRecordNotFound):
		http.Error(w, what+" not found", http.StatusNotFound)
	default:
		log.Errorf("delete %s failed: %s", what, err)
		http.Error(w, "delete "+what+" failed", http.StatusInternalServerError)
	}
}

func (handler *Handler) writeStateJSON(w http.ResponseWriter, state *dashboard.UserState) {
	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("marshal dashboard state: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, stateJson)
}
