package pricefeed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheServesFreshPricesOnly(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache()
	now := base
	c.now = func() time.Time { return now }

	_, ok := c.Last("BTCUSDT")
	assert.False(t, ok, "пустой кэш ничего не отдаёт")

	c.put("BTCUSDT", 65000.5, base)

	px, ok := c.Last("BTCUSDT")
	assert.True(t, ok)
	assert.Equal(t, 65000.5, px)

	// через maxAge цена считается протухшей
	now = base.Add(maxAge + time.Second)
	_, ok = c.Last("BTCUSDT")
	assert.False(t, ok)

	// свежая запись снова оживляет символ
	c.put("BTCUSDT", 65100, now)
	px, ok = c.Last("BTCUSDT")
	assert.True(t, ok)
	assert.Equal(t, float64(65100), px)
}
