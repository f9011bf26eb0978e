// file: internals/features/wali/auth/session/store.go
package session

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	CookieName = "wali_session"

	keyPrefix    = "wali:session:"
	indexPrefix  = "wali:sessions:"
	defaultTTL   = 30 * 24 * time.Hour
	maxSessionID = 64
)

var ErrNotFound = errors.New("sesi wali tidak ditemukan")

// Session: objek sesi wali yang disimpan di Redis (JSON).
type Session struct {
	ID        string    `json:"-"`
	WaliID    uuid.UUID `json:"wali_id"`
	Phone     string    `json:"phone"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) TTL() time.Duration { return s.ttl }

func sessionKey(id string) string      { return keyPrefix + id }
func indexKey(waliID uuid.UUID) string { return indexPrefix + waliID.String() }
func validID(id string) bool           { return id != "" && len(id) <= maxSessionID }

// Create menyimpan sesi baru dan mencatat id-nya di index per wali.
func (s *Store) Create(ctx context.Context, waliID uuid.UUID, phone, name string) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		WaliID:    waliID,
		Phone:     phone,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	raw, err := sonic.Marshal(sess)
	if err != nil {
		return nil, err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), raw, s.ttl)
	pipe.SAdd(ctx, indexKey(waliID), sess.ID)
	pipe.Expire(ctx, indexKey(waliID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return nil, ErrNotFound
	}
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := sonic.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	sess.ID = id
	return &sess, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if !validID(id) {
		return nil
	}
	sess, err := s.Get(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, sessionKey(id))
	if sess != nil {
		pipe.SRem(ctx, indexKey(sess.WaliID), id)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// RevokeWali menghapus semua sesi milik satu wali (nonaktif, reset password, hapus akun).
func (s *Store) RevokeWali(ctx context.Context, waliID uuid.UUID) (int, error) {
	ids, err := s.rdb.SMembers(ctx, indexKey(waliID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	n, err := s.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}
	if err := s.rdb.Del(ctx, indexKey(waliID)).Err(); err != nil {
		return int(n), err
	}
	return int(n), nil
}
