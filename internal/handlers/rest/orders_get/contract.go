//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"market/internal/entities"
	"market/internal/service/notifier"
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
	Orders(role entities.OrderUserType) ([]entities.OrderItemView, error)
	Status() entities.OrderListStatus
}

type ActiveCounter interface {
	ActiveCount(kind notifier.Kind) int
}
