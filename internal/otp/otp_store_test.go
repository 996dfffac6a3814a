package otp_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/otp"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	ch := otp.Challenge{
		MobileNumber: "9999999999",
		Secret:       "JBSWY3DPEHPK3PXP",
		Counter:      42,
		IssuedAt:     now,
		ExpiresAt:    now.Add(10 * time.Minute),
	}
	payload, _ := json.Marshal(ch)
	key := otp.ChallengeKey(ch.MobileNumber)

	t.Run("save sets value with ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSet(key, string(payload), 15*time.Minute).SetVal("OK")

		assert.NoError(t, otp.NewRedisStore(db).Save(ctx, ch, 15*time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get decodes challenge", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(key).SetVal(string(payload))

		got, err := otp.NewRedisStore(db).Get(ctx, ch.MobileNumber)
		assert.NoError(t, err)
		assert.Equal(t, ch.Counter, got.Counter)
		assert.True(t, ch.ExpiresAt.Equal(got.ExpiresAt))
	})

	t.Run("get missing key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(key).RedisNil()

		_, err := otp.NewRedisStore(db).Get(ctx, ch.MobileNumber)
		assert.ErrorIs(t, err, otp.ErrChallengeNotFound)
	})

	t.Run("update keeps ttl", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetArgs(key, string(payload), redis.SetArgs{Mode: "XX", KeepTTL: true}).SetVal("OK")

		assert.NoError(t, otp.NewRedisStore(db).Update(ctx, ch))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update does not recreate a consumed challenge", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectSetArgs(key, string(payload), redis.SetArgs{Mode: "XX", KeepTTL: true}).RedisNil()

		err := otp.NewRedisStore(db).Update(ctx, ch)
		assert.ErrorIs(t, err, otp.ErrChallengeNotFound)
	})

	t.Run("delete only succeeds for the caller that removed the key", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectDel(key).SetVal(1)
		mock.ExpectDel(key).SetVal(0)

		store := otp.NewRedisStore(db)
		first, err := store.Delete(ctx, ch.MobileNumber)
		assert.NoError(t, err)
		assert.True(t, first)

		second, err := store.Delete(ctx, ch.MobileNumber)
		assert.NoError(t, err)
		assert.False(t, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
