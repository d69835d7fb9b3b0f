package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	"futures_bot/internal/modules/config"
)

const baseURL = "https://fapi.binance.com"

// Client — REST-клиент Binance USDT-M futures.
type Client struct {
	cfg  *config.Config
	http *http.Client

	apiKey    string
	apiSecret string
	base      string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:       cfg,
		http:      &http.Client{Timeout: 10 * time.Second},
		apiKey:    cfg.Binance.APIKey,
		apiSecret: cfg.Binance.APISecret,
		base:      baseURL,
	}
}

func (c *Client) sign(query string) string {
	h := hmac.New(sha256.New, []byte(c.apiSecret))
	h.Write([]byte(query))
	return hex.EncodeToString(h.Sum(nil))
}

// doPublic — запрос без подписи (klines, exchangeInfo, ticker).
func (c *Client) doPublic(ctx context.Context, path string, params url.Values, out any) error {
	u := c.base + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, out)
}

// doSigned добавляет timestamp/recvWindow и HMAC-подпись запроса.
// Binance принимает параметры в query string для любого метода.
func (c *Client) doSigned(ctx context.Context, method, path string, params url.Values, out any) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("timestamp", strconv.FormatInt(time.Now().UnixMilli(), 10))
	params.Set("recvWindow", "5000")

	query := params.Encode()
	query += "&signature=" + c.sign(query)

	req, err := http.NewRequestWithContext(ctx, method, c.base+path+"?"+query, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-MBX-APIKEY", c.apiKey)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %v", ErrUnavailable, err)
	}

	if resp.StatusCode/100 != 2 {
		// 5xx и rate-limit — дело временное, остальное — отказ параметров.
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == 418 {
			return fmt.Errorf("%w: http %d: %s", ErrUnavailable, resp.StatusCode, string(data))
		}
		var ae APIError
		if err := sonic.Unmarshal(data, &ae); err == nil && ae.Code != 0 {
			return &ae
		}
		return &APIError{Code: resp.StatusCode, Msg: string(data)}
	}

	if out == nil {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode: %w; body=%s", err, string(data))
	}
	return nil
}

func formatQty(v float64) string   { return strconv.FormatFloat(v, 'f', -1, 64) }
func formatPrice(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
