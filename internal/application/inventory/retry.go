package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// RetryConfig reintentos acotados para lecturas idempotentes contra los repositorios.
type RetryConfig struct {
	MaxTries        uint
	InitialInterval time.Duration
}

// retryRead ejecuta op con backoff exponencial. ErrNotFound, ErrInvalidInput y la
// cancelación del contexto no se reintentan.
func retryRead[T any](ctx context.Context, cfg RetryConfig, op func() (T, error)) (T, error) {
	tries := cfg.MaxTries
	if tries == 0 {
		tries = 1
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = 20 * cfg.InitialInterval
	b.Reset()

	return backoff.Retry(ctx, func() (T, error) {
		v, err := op()
		if err == nil {
			return v, nil
		}
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) || ctx.Err() != nil {
			return v, backoff.Permanent(err)
		}
		return v, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(tries))
}
