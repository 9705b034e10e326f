//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=setting_put_test
package setting_put

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
	Set(ctx context.Context, path string, value any) (*entities.Setting, error)
}
