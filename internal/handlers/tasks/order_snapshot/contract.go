//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_snapshot_test
package order_snapshot

import (
	"context"

	"market/internal/entities"
)

type Gateway interface {
	SearchOrderItems(ctx context.Context, identityID int64) ([]entities.OrderItem, error)
}
