package session

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"

    "github.com/raelyaan/venue-booking/internal/model"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis as JSON values under "session:<id>"
// with a fixed TTL.  Every Save refreshes the TTL, so active sessions stay
// alive while idle ones expire on the store's own schedule.
type RedisStore struct {
    client *redis.Client
    ttl    time.Duration
}

// NewRedisStore returns a RedisStore bound to the given client.  A ttl of
// zero or less disables expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
    return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*model.Session, error) {
    raw, err := s.client.Get(ctx, keyPrefix+id).Bytes()
    if err == redis.Nil {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    var sess model.Session
    if err := json.Unmarshal(raw, &sess); err != nil {
        // Treat a corrupt value the same as a missing one so the caller
        // replaces it with a fresh session.
        return nil, ErrNotFound
    }
    return &sess, nil
}

func (s *RedisStore) Save(ctx context.Context, sess *model.Session) error {
    raw, err := json.Marshal(sess)
    if err != nil {
        return err
    }
    return s.client.Set(ctx, keyPrefix+sess.ID, raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
    return s.client.Del(ctx, keyPrefix+id).Err()
}
