//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_action_requested_test
package order_action_requested

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
	ActionOrderItem(ctx context.Context, action entities.OrderAction) (*entities.OrderItemView, error)
}

type Validator interface {
	Struct(s interface{}) error
}
