//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

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

type Registry interface {
	StateDetails(buyflow entities.BuyFlowType, stateID entities.BuyFlowOrderType, role entities.OrderUserType) entities.BuyflowStateDetails
	ActionOrderItem(ctx context.Context, item entities.OrderItem, toState entities.BuyFlowOrderType, role entities.OrderUserType, params entities.ActionTransitionParams) (*entities.OrderItem, error)
}

type Notifier interface {
	Process(ctx context.Context, snapshot entities.OrderSnapshot) error
}

// NotifierFunc позволяет передать функцию там, где ожидается Notifier.
type NotifierFunc func(ctx context.Context, snapshot entities.OrderSnapshot) error

func (f NotifierFunc) Process(ctx context.Context, snapshot entities.OrderSnapshot) error {
	return f(ctx, snapshot)
}

type Refresher interface {
	Refresh()
	LastFailed() bool
}
