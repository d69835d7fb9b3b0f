package engine

import (
	"context"

	"futures_bot/internal/metrics"
	"futures_bot/internal/modules/binance/service"
	"futures_bot/pkg/logger"
)

// withRetry повторяет op до cfg.RetryAttempts раз с фиксированной
// паузой. Повторяются только транзиентные ошибки (сеть, 5xx, 429);
// отказ биржи возвращается сразу.
func (e *Engine) withRetry(ctx context.Context, what string, op func() error) error {
	var err error
	for attempt := 1; attempt <= e.cfg.RetryAttempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err = op()
		if err == nil {
			return nil
		}

		if !service.IsTransient(err) {
			metrics.RemoteErrors.WithLabelValues("rejected").Inc()
			return err
		}

		metrics.RemoteErrors.WithLabelValues("transient").Inc()
		logger.Error("[RETRY] %s: попытка %d/%d: %v", what, attempt, e.cfg.RetryAttempts, err)
		if attempt < e.cfg.RetryAttempts {
			e.sleep(e.cfg.RetryDelay)
		}
	}
	e.n.Sendf("⚠️ %s: операция не прошла после %d попыток", what, e.cfg.RetryAttempts)
	return err
}
