//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_test
package settings

import (
	"context"

	"market/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	GetAll(ctx context.Context) (map[string][]byte, error)
	Get(ctx context.Context, path string) ([]byte, error)
	Upsert(ctx context.Context, path string, value []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
