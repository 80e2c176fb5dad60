package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func TestGetJWTKey(t *testing.T) {
	assert.Equal(t, "jwt.blacklist.abc", getJWTKey("abc"))
}

func TestCheckJWTInBlacklist_ConnectionError(t *testing.T) {
	// порт 1 закрыт: ошибка соединения не должна выглядеть как «токен чист»
	c := NewFromClient(redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	}))
	t.Cleanup(func() { _ = c.Close() })

	listed, err := c.CheckJWTInBlacklist(context.Background(), "token")
	assert.Error(t, err)
	assert.False(t, listed)
}
