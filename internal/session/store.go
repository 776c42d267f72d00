package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

const keyPrefix = "session:"

// Store keeps sessions in Redis as JSON, keyed by session ID. Each session
// lives for 24 hours from its last write, matching the token lifetime.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store over a Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: 24 * time.Hour}
}

// Get loads the session for an ID. An unknown or expired ID yields a fresh
// session on the Home page rather than an error.
func (st *Store) Get(ctx context.Context, id string) (*Session, error) {
	val, err := st.rdb.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return New(), nil // No session yet
	} else if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Save writes the session back under its ID, refreshing the TTL.
func (st *Store) Save(ctx context.Context, id string, sess *Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return st.rdb.Set(ctx, keyPrefix+id, b, st.ttl).Err()
}

// Delete removes the session for an ID.
func (st *Store) Delete(ctx context.Context, id string) error {
	return st.rdb.Del(ctx, keyPrefix+id).Err()
}
