package storage

import (
	"context"

	"github.com/Angelolozano-7/Prisma-Led/pkg/retry"
)

// ReadWithRetry повторяет чтение из PostgreSQL при временных ошибках.
// Записи не повторяются: транзакция уже могла частично выполниться.
func ReadWithRetry(ctx context.Context, policy retry.Policy, read func(ctx context.Context) error) error {
	policy.IsTransient = IsTransientPostgres
	return retry.Do(ctx, policy, read)
}
