package pricefeed

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"futures_bot/pkg/logger"
)

const (
	streamURL = "wss://fstream.binance.com/ws/!markPrice@arr@1s"
	maxAge    = 10 * time.Second
)

type entry struct {
	price float64
	at    time.Time
}

// Cache — последние mark-цены по всем инструментам. Протухшие значения
// не отдаются: движок падает обратно на REST-тикер.
type Cache struct {
	mu   sync.RWMutex
	last map[string]entry
	now  func() time.Time
}

func NewCache() *Cache {
	return &Cache{last: make(map[string]entry), now: time.Now}
}

func (c *Cache) put(symbol string, price float64, at time.Time) {
	c.mu.Lock()
	c.last[symbol] = entry{price: price, at: at}
	c.mu.Unlock()
}

// Last — свежая цена или ok=false.
func (c *Cache) Last(symbol string) (float64, bool) {
	c.mu.RLock()
	e, ok := c.last[symbol]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.at) > maxAge {
		return 0, false
	}
	return e.price, true
}

// Feed читает стрим mark-цен и наполняет кэш. Падение стрима не мешает
// движку — он всегда может сходить за ценой по REST.
type Feed struct {
	dialer *websocket.Dialer
	cache  *Cache
	url    string
}

func NewFeed(cache *Cache) *Feed {
	return &Feed{
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		cache:  cache,
		url:    streamURL,
	}
}

// Run — reconnect-loop до отмены контекста.
func (f *Feed) Run(ctx context.Context) {
	backoff := time.Second
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		conn, _, err := f.dialer.DialContext(ctx, f.url, nil)
		if err != nil {
			logger.Error("[FEED] dial: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second
		logger.Info("[FEED] mark-price stream connected")

		f.readLoop(ctx, conn)
		_ = conn.Close()
	}
}

func (f *Feed) readLoop(ctx context.Context, conn *websocket.Conn) {
	// закрываем соединение при отмене, чтобы разблокировать ReadJSON
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		var frame []struct {
			Event  string `json:"e"`
			Symbol string `json:"s"`
			Price  string `json:"p"`
			TimeMs int64  `json:"E"`
		}
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() == nil {
				logger.Error("[FEED] read: %v", err)
			}
			return
		}

		for _, m := range frame {
			if m.Event != "markPriceUpdate" {
				continue
			}
			px, err := strconv.ParseFloat(m.Price, 64)
			if err != nil || px <= 0 {
				continue
			}
			f.cache.put(m.Symbol, px, time.UnixMilli(m.TimeMs))
		}
	}
}
