package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrRetriesExhausted возвращается, когда все попытки завершились временной ошибкой.
// Последняя ошибка оборачивается вместе с ним и доступна через errors.As.
var ErrRetriesExhausted = errors.New("retry: retries exhausted")

// Значения по умолчанию: 1s, 2s, 4s, 8s + до 0.5s случайной добавки
const (
	DefaultMaxAttempts = 5
	DefaultBaseDelay   = time.Second
	DefaultMaxJitter   = 500 * time.Millisecond
)

// Policy политика повторов с экспоненциальной задержкой и случайной добавкой
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxJitter   time.Duration

	// IsTransient решает, стоит ли повторять вызов. nil - не повторять ничего.
	IsTransient func(err error) bool

	// OnRetry вызывается перед ожиданием очередного повтора
	OnRetry func(attempt int, wait time.Duration, err error)

	sleep  func(ctx context.Context, d time.Duration) error
	random func() float64
}

// DefaultPolicy политика по умолчанию с переданным классификатором ошибок
func DefaultPolicy(isTransient func(err error) bool) Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		MaxJitter:   DefaultMaxJitter,
		IsTransient: isTransient,
	}
}

// Delay задержка перед повтором после неудачной попытки attempt (с нуля):
// base * 2^attempt + jitter, где jitter равномерно распределен в [0, MaxJitter)
func (p Policy) Delay(attempt int, jitterFraction float64) time.Duration {
	backoff := p.BaseDelay << uint(attempt)
	return backoff + time.Duration(jitterFraction*float64(p.MaxJitter))
}

// Do выполняет op, повторяя временные ошибки. Постоянные ошибки возвращаются сразу.
func Do(ctx context.Context, p Policy, op func(ctx context.Context) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = sleepContext
	}
	random := p.random
	if random == nil {
		random = rand.Float64
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		if p.IsTransient == nil || !p.IsTransient(err) {
			return err
		}
		lastErr = err

		if attempt == attempts-1 {
			break
		}

		wait := p.Delay(attempt, random())
		if p.OnRetry != nil {
			p.OnRetry(attempt+1, wait, err)
		}
		if err := sleep(ctx, wait); err != nil {
			return fmt.Errorf("%w: %w", err, lastErr)
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
