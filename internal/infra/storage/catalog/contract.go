package catalog

import "github.com/Angelolozano-7/Prisma-Led/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
