package otp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrChallengeNotFound = errors.New("otp challenge not found")

//go:generate mockgen -source=otp_store.go -destination=mock/otp_store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, ch Challenge, ttl time.Duration) error
	Get(ctx context.Context, mobile string) (*Challenge, error)
	// Update menyimpan ulang challenge tanpa mengubah TTL key; gagal dengan
	// ErrChallengeNotFound bila key sudah dikonsumsi pemanggil lain.
	Update(ctx context.Context, ch Challenge) error
	// Delete mengembalikan true hanya untuk pemanggil yang benar-benar
	// menghapus key. Verify memakai ini sebagai titik konsumsi tunggal.
	Delete(ctx context.Context, mobile string) (bool, error)
}

type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func ChallengeKey(mobile string) string {
	return "otp:challenge:" + mobile
}

func (s *RedisStore) Save(ctx context.Context, ch Challenge, ttl time.Duration) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, ChallengeKey(ch.MobileNumber), string(payload), ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, mobile string) (*Challenge, error) {
	val, err := s.rdb.Get(ctx, ChallengeKey(mobile)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrChallengeNotFound
	}
	if err != nil {
		return nil, err
	}

	var ch Challenge
	if err := json.Unmarshal([]byte(val), &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (s *RedisStore) Update(ctx context.Context, ch Challenge) error {
	payload, err := json.Marshal(ch)
	if err != nil {
		return err
	}
	// XX: jangan menghidupkan lagi challenge yang sudah dihapus (tanpa TTL).
	err = s.rdb.SetArgs(ctx, ChallengeKey(ch.MobileNumber), string(payload), redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if errors.Is(err, redis.Nil) {
		return ErrChallengeNotFound
	}
	return err
}

func (s *RedisStore) Delete(ctx context.Context, mobile string) (bool, error) {
	n, err := s.rdb.Del(ctx, ChallengeKey(mobile)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
