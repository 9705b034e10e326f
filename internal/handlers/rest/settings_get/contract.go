//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settings_get_test
package settings_get

import (
	"context"

	"market/internal/entities"
	"market/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Settings(ctx context.Context) ([]entities.Setting, error)
}
