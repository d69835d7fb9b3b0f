package service

import (
	"errors"
	"fmt"
)

// ErrUnavailable — транспортная ошибка или 5xx/429: можно ретраить.
var ErrUnavailable = errors.New("binance unavailable")

// ErrInstrumentNotFound — символа нет в exchangeInfo: инструмент пропускается.
var ErrInstrumentNotFound = errors.New("instrument not found")

// APIError — отказ валидации на стороне биржи, не ретраится.
type APIError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance api error: code=%d msg=%s", e.Code, e.Msg)
}

func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func IsRejected(err error) bool {
	var ae *APIError
	return errors.As(err, &ae)
}
