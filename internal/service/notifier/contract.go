//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

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

type NotificationSink interface {
	Send(ctx context.Context, message string) error
}

type SettingsStore interface {
	Bool(ctx context.Context, field string) (bool, error)
	Int64(ctx context.Context, field string) (int64, error)
	Update(ctx context.Context, field string, value any) bool
}
