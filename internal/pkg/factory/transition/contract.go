//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"context"

	"market/internal/entities"
)

type MarketGateway interface {
	AcceptBid(ctx context.Context, identityID, bidID int64) (*entities.TransitionResult, error)
	RejectBid(ctx context.Context, identityID, bidID int64, reason string) (*entities.TransitionResult, error)
	CancelBid(ctx context.Context, identityID, bidID int64) (*entities.TransitionResult, error)
	LockEscrow(ctx context.Context, orderItemID int64, memo string, contact entities.ContactDetails) (*entities.TransitionResult, error)
	CompleteEscrow(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error)
	ShipItem(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error)
	ReleaseEscrow(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error)
}
