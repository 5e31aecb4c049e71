package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fitdash/fitdash/internal/telemetry/metrics"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=dashboard_test

// stateStore is the record store boundary: one document per user,
// merge-on-write semantics, push-based subscription to changes.
type stateStore interface {
	Get(ctx context.Context, key string) (*UserState, error)
	Set(ctx context.Context, key string, state *UserState, merge bool) error
	Subscribe(ctx context.Context, key string, onChange func(*UserState), onErr func(error)) (func(), error)
}

const persistTimeout = 10 * time.Second

// Service keeps the two-phase user state: the optimistic "pending" state,
// mutated immediately on user actions, and the "confirmed" state, fully
// replaced by every snapshot the record store subscription delivers.
// Local mutations are persisted asynchronously as one whole-aggregate write
// each; writes for one user are serialized and land in mutation order.
// A failed persist is logged and the optimistic state stands uncorrected.
type Service struct {
	store          stateStore
	namespace      string
	metricsManager *metrics.Manager

	mu             sync.Mutex
	pending        map[string]*UserState
	confirmed      map[string]*UserState
	unsubscribes   map[string]func()
	listeners      map[string]map[int]chan *UserState
	nextListenerID int

	persistQueues map[string][]persistRequest
	persistBusy   map[string]bool
	persistWG     sync.WaitGroup
}

// persistRequest is one queued whole-aggregate write;
// done, when non-nil, receives the write result
type persistRequest struct {
	snapshot *UserState
	done     chan error
}

func NewService(store stateStore, namespace string, metricsManager *metrics.Manager) *Service {
	return &Service{
		store:          store,
		namespace:      namespace,
		metricsManager: metricsManager,
		pending:        make(map[string]*UserState),
		confirmed:      make(map[string]*UserState),
		unsubscribes:   make(map[string]func()),
		listeners:      make(map[string]map[int]chan *UserState),
		persistQueues:  make(map[string][]persistRequest),
		persistBusy:    make(map[string]bool),
	}
}

// key derives the record store key from the fixed namespace and the user identity
func (s *Service) key(userID string) string {
	return s.namespace + "/" + userID
}

// Setup creates the user state on first setup, or updates profile and goals
// (appending a trend point) on a repeated one. Unlike the log actions,
// setup persists synchronously: a failure here means the user has no state.
func (s *Service) Setup(
	ctx context.Context,
	userID string,
	profile Profile,
	goals Goals,
	initial TrendPoint,
) (_ *UserState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.setup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	if !goals.GoalType.Valid() {
		return nil, fmt.Errorf("invalid goal type: %q", goals.GoalType)
	}
	if initial.Date.IsZero() {
		initial.Date = time.Now()
	}

	s.mu.Lock()

	state, err := s.loadLocked(ctx, userID)
	if err != nil && !errors.Is(err, ErrStateNotFound) {
		s.mu.Unlock()
		return nil, fmt.Errorf("load state: %w", err)
	}
	if state == nil {
		state = &UserState{}
		state.Normalize()
	}

	state.Profile = profile
	state.Goals = goals
	state.TrendPoints = append(state.TrendPoints, initial)

	if err := state.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	done := make(chan error, 1)
	s.enqueuePersistLocked(userID, persistRequest{snapshot: state.Clone(), done: done})
	s.mu.Unlock()

	if err := <-done; err != nil {
		return nil, fmt.Errorf("persist state: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[userID] = state
	s.confirmed[userID] = state.Clone()
	s.watchLocked(userID)
	s.notifyLocked(userID, state)

	return state.Clone(), nil
}

// State returns the current (pending) state for the user,
// loading it from the record store on first access.
func (s *Service) State(ctx context.Context, userID string) (_ *UserState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.state")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	return state.Clone(), nil
}

// loadLocked returns the pending state, fetching it from the store when not
// yet in memory. Caller must hold s.mu.
func (s *Service) loadLocked(ctx context.Context, userID string) (*UserState, error) {
	if state := s.pending[userID]; state != nil {
		return state, nil
	}

	state, err := s.store.Get(ctx, s.key(userID))
	if err != nil {
		return nil, err
	}
	state.Normalize()

	s.pending[userID] = state
	s.confirmed[userID] = state.Clone()
	s.watchLocked(userID)

	return state, nil
}

// watchLocked opens the record store subscription for the user, once
func (s *Service) watchLocked(userID string) {
	if _, ok := s.unsubscribes[userID]; ok {
		return
	}

	unsubscribe, err := s.store.Subscribe(
		context.Background(),
		s.key(userID),
		func(snapshot *UserState) {
			s.onSnapshot(userID, snapshot)
		},
		func(err error) {
			log.Errorf("state subscription for user %s: %s", userID, err)
		},
	)
	if err != nil {
		// not fatal, the local state simply will not get remote updates
		log.Errorf("failed to subscribe to state changes for user %s: %s", userID, err)
		return
	}

	s.unsubscribes[userID] = unsubscribe
	if s.metricsManager != nil {
		s.metricsManager.GaugeStateSubscriptions.Inc()
	}
}

// onSnapshot handles an authoritative snapshot pushed by the record store
func (s *Service) onSnapshot(userID string, snapshot *UserState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.confirmed[userID] = snapshot.Clone()
	s.pending[userID] = Reconcile(s.pending[userID], snapshot)
	s.notifyLocked(userID, s.pending[userID])
}

// apply runs a mutation over the pending state and queues an async persist
// of the whole aggregate. Caller gets a clone of the mutated state.
func (s *Service) apply(ctx context.Context, userID string, mutate func(*UserState) error) (*UserState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := mutate(state); err != nil {
		return nil, err
	}

	s.enqueuePersistLocked(userID, persistRequest{snapshot: state.Clone()})
	s.notifyLocked(userID, state)

	return state.Clone(), nil
}

// enqueuePersistLocked appends a write to the user's persist queue and starts
// the drain goroutine if none is running. One drain goroutine per user keeps
// the writes in mutation order. Caller must hold s.mu.
func (s *Service) enqueuePersistLocked(userID string, req persistRequest) {
	s.persistQueues[userID] = append(s.persistQueues[userID], req)
	if s.persistBusy[userID] {
		return
	}
	s.persistBusy[userID] = true
	s.persistWG.Add(1)
	go s.persistLoop(userID)
}

// persistLoop drains the user's persist queue one write at a time and exits
// when the queue is empty. There is no rollback on failure: the optimistic
// local state stands, the error is logged only (accepted staleness risk).
func (s *Service) persistLoop(userID string) {
	defer s.persistWG.Done()

	for {
		s.mu.Lock()
		queue := s.persistQueues[userID]
		if len(queue) == 0 {
			s.persistBusy[userID] = false
			s.mu.Unlock()
			return
		}
		req := queue[0]
		s.persistQueues[userID] = queue[1:]
		s.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		err := s.store.Set(ctx, s.key(userID), req.snapshot, true)
		cancel()

		if err != nil {
			log.Errorf("persist state for user %s: %s", userID, err)
		} else if s.metricsManager != nil {
			s.metricsManager.CounterStateWrites.Inc()
		}
		if req.done != nil {
			req.done <- err
		}
	}
}

func (s *Service) LogWorkout(ctx context.Context, userID string, record WorkoutRecord) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.logWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.ExerciseName == "" {
		return nil, errors.New("exercise name empty")
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	record.ID = uuid.NewString()
	span.SetAttributes(attribute.String("workout.id", record.ID))

	if _, err := s.apply(ctx, userID, func(state *UserState) error {
		state.Workouts = append(state.Workouts, record)
		return nil
	}); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, userID, recordID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.deleteWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", recordID))

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		for i, w := range state.Workouts {
			if w.ID == recordID {
				state.Workouts = append(state.Workouts[:i], state.Workouts[i+1:]...)
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *Service) LogNutrition(ctx context.Context, userID string, record NutritionRecord) (_ *NutritionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.logNutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.TotalCalories < 0 {
		return nil, errors.New("total calories must be non-negative")
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	record.ID = uuid.NewString()
	span.SetAttributes(attribute.String("nutrition.id", record.ID))

	if _, err := s.apply(ctx, userID, func(state *UserState) error {
		state.Nutrition = append(state.Nutrition, record)
		return nil
	}); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *Service) DeleteNutrition(ctx context.Context, userID, recordID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.deleteNutrition")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("nutrition.id", recordID))

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		for i, n := range state.Nutrition {
			if n.ID == recordID {
				state.Nutrition = append(state.Nutrition[:i], state.Nutrition[i+1:]...)
				return nil
			}
		}
		return ErrRecordNotFound
	})
	return err
}

func (s *Service) AddTrendPoint(ctx context.Context, userID string, point TrendPoint) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.addTrendPoint")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if point.WeightKg < 0 || point.BodyFatPercent < 0 {
		return errors.New("trend point values must be non-negative")
	}
	if point.Date.IsZero() {
		point.Date = time.Now()
	}

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		state.TrendPoints = append(state.TrendPoints, point)
		return nil
	})
	return err
}

func (s *Service) LogHabit(ctx context.Context, userID string, record HabitRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.logHabit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.Date.IsZero() {
		record.Date = time.Now()
	}
	record.ID = uuid.NewString()

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		state.Habits = append(state.Habits, record)
		return nil
	})
	return err
}

func (s *Service) UpdateGoals(ctx context.Context, userID string, goals Goals) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.updateGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if !goals.GoalType.Valid() {
		return fmt.Errorf("invalid goal type: %q", goals.GoalType)
	}
	if goals.TargetWeightKg < 0 || goals.TargetBodyFatPercent < 0 {
		return errors.New("goal values must be non-negative")
	}

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		state.Goals = goals
		return nil
	})
	return err
}

// ReplaceInsights replaces the insights list wholesale (never appends)
func (s *Service) ReplaceInsights(ctx context.Context, userID string, insights []string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.replaceInsights")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if insights == nil {
		insights = []string{}
	}

	_, err = s.apply(ctx, userID, func(state *UserState) error {
		state.Insights = insights
		return nil
	})
	return err
}

// Watch registers a local listener notified with a state clone on every
// change, optimistic or confirmed. The returned func removes the listener.
func (s *Service) Watch(userID string) (<-chan *UserState, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextListenerID++
	id := s.nextListenerID

	ch := make(chan *UserState, 8)
	if s.listeners[userID] == nil {
		s.listeners[userID] = make(map[int]chan *UserState)
	}
	s.listeners[userID][id] = ch

	remove := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if listener, ok := s.listeners[userID][id]; ok {
			delete(s.listeners[userID], id)
			close(listener)
		}
	}
	return ch, remove
}

// notifyLocked fans the current state out to local listeners; slow listeners
// get dropped updates instead of blocking the service. Caller must hold s.mu.
func (s *Service) notifyLocked(userID string, state *UserState) {
	for _, listener := range s.listeners[userID] {
		select {
		case listener <- state.Clone():
		default:
		}
	}
}

// Wait blocks until all in-flight async persist operations complete
func (s *Service) Wait() {
	s.persistWG.Wait()
}

// Close unsubscribes all record store subscriptions and waits for persists
func (s *Service) Close() {
	s.mu.Lock()
	for userID, unsubscribe := range s.unsubscribes {
		unsubscribe()
		delete(s.unsubscribes, userID)
		if s.metricsManager != nil {
			s.metricsManager.GaugeStateSubscriptions.Dec()
		}
	}
	s.mu.Unlock()

	s.persistWG.Wait()
}
