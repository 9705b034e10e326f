//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=buyflow_test
package buyflow

import (
	"context"

	"market/internal/entities"
)

// TransitionFn выполняет переход на стороне демона. Не должна менять переданный заказ.
type TransitionFn func(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error)

type TransitionFactory interface {
	GetTransition(kind entities.TransitionKind) (TransitionFn, error)
}
