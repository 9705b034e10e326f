//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=market_test
package market

import (
	"context"
)

type client interface {
	Call(ctx context.Context, method string, params []any, result any) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
