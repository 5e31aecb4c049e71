package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fitdash/fitdash/internal/dashboard"
	"github.com/fitdash/fitdash/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const changeFeedPrefix = "fitdash-state||"

// Store keeps every user state as a single JSONB document, keyed by
// "<namespace>/<userID>". Writes publish the post-write document on a
// per-key Redis channel, so every subscriber (this instance included)
// sees the same confirmed snapshots in the same order.
type Store struct {
	db  *pgxpool.Pool
	rdb *redis.Client
}

func NewStore(db *pgxpool.Pool, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
	}
}

func Key(namespace, userID string) string {
	return namespace + "/" + userID
}

func changeFeedChannel(key string) string {
	return changeFeedPrefix + key
}

func (s *Store) Setup(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_state (
			key 		TEXT PRIMARY KEY,
			doc 		JSONB NOT NULL,
			updated_at 	TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
	)
	if err != nil {
		return fmt.Errorf("create user_state table: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (_ *dashboard.UserState, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recordstore.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("state.key", key))

	var doc []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT doc FROM user_state WHERE key = $1;`,
		key,
	).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, dashboard.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user state: %w", err)
	}

	return decodeState(doc)
}

// Set writes the state document for key. With merge set, top level fields of
// the given document are merged over the stored one (shallow, field by field),
// otherwise the document is replaced. The resulting document is published on
// the key's change feed channel.
func (s *Store) Set(ctx context.Context, key string, state *dashboard.UserState, merge bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recordstore.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("state.key", key),
		attribute.Bool("state.merge", merge),
	)

	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	query := `
		INSERT INTO user_state (key, doc, updated_at)
			VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
			SET doc = EXCLUDED.doc, updated_at = now()
		RETURNING doc;`
	if merge {
		query = `
			INSERT INTO user_state (key, doc, updated_at)
				VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE
				SET doc = user_state.doc || EXCLUDED.doc, updated_at = now()
			RETURNING doc;`
	}

	var storedDoc []byte
	if err := s.db.QueryRow(ctx, query, key, doc).Scan(&storedDoc); err != nil {
		return fmt.Errorf("upsert user state: %w", err)
	}

	if err := s.rdb.Publish(ctx, changeFeedChannel(key), storedDoc).Err(); err != nil {
		return fmt.Errorf("publish state change: %w", err)
	}

	return nil
}

// Subscribe listens on the key's change feed and invokes onChange with every
// decoded snapshot. Decode failures go to onErr, the subscription stays alive.
// The returned function stops the subscription.
func (s *Store) Subscribe(
	ctx context.Context,
	key string,
	onChange func(state *dashboard.UserState),
	onErr func(err error),
) (unsubscribe func(), err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "recordstore.subscribe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("state.key", key))

	channel := changeFeedChannel(key)
	pubsub := s.rdb.Subscribe(ctx, channel)

	// force the subscription to be established before returning
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s: %w", channel, err)
	}

	go func() {
		for msg := range pubsub.Channel() {
			state, err := decodeState([]byte(msg.Payload))
			if err != nil {
				onErr(fmt.Errorf("decode state change: %w", err))
				continue
			}
			onChange(state)
		}
		log.Tracef("change feed %s: closed", channel)
	}()

	return func() {
		if err := pubsub.Close(); err != nil {
			log.Errorf("change feed %s: close: %s", channel, err)
		}
	}, nil
}

func decodeState(doc []byte) (*dashboard.UserState, error) {
	var state dashboard.UserState
	if err := json.Unmarshal(doc, &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	state.Normalize()
	return &state, nil
}
