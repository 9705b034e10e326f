package transition

import (
	"context"
	"fmt"

	"market/internal/entities"
	"market/internal/service/buyflow"
)

// Factory сопоставляет вид перехода с вызовом демона.
// Операции над ставкой адресуются по base bid id, над escrow - по order item id.
type Factory struct {
	gateway    MarketGateway
	identityID int64
}

func New(gateway MarketGateway, identityID int64) *Factory {
	return &Factory{
		gateway:    gateway,
		identityID: identityID,
	}
}

func (f *Factory) GetTransition(kind entities.TransitionKind) (buyflow.TransitionFn, error) {
	switch kind {
	case entities.TransitionAcceptBid:
		return f.acceptBid, nil
	case entities.TransitionRejectBid:
		return f.rejectBid, nil
	case entities.TransitionCancelBid:
		return f.cancelBid, nil
	case entities.TransitionLockEscrow:
		return f.lockEscrow, nil
	case entities.TransitionCompleteEscrow:
		return f.completeEscrow, nil
	case entities.TransitionShipItem:
		return f.shipItem, nil
	case entities.TransitionReleaseEscrow:
		return f.releaseEscrow, nil
	default:
		return nil, fmt.Errorf("%w: %q", buyflow.ErrUndefinedTransition, kind)
	}
}

func (f *Factory) acceptBid(ctx context.Context, item entities.OrderItem, _ entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.AcceptBid(ctx, f.identityID, item.BaseBidID)
	if err != nil {
		return nil, fmt.Errorf("accept bid %d: %w", item.BaseBidID, err)
	}
	return result, nil
}

func (f *Factory) rejectBid(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.RejectBid(ctx, f.identityID, item.BaseBidID, params.Memo)
	if err != nil {
		return nil, fmt.Errorf("reject bid %d: %w", item.BaseBidID, err)
	}
	return result, nil
}

func (f *Factory) cancelBid(ctx context.Context, item entities.OrderItem, _ entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.CancelBid(ctx, f.identityID, item.BaseBidID)
	if err != nil {
		return nil, fmt.Errorf("cancel bid %d: %w", item.BaseBidID, err)
	}
	return result, nil
}

func (f *Factory) lockEscrow(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	contact := entities.ContactDetails{
		Email: params.DeliveryEmail,
		Phone: params.DeliveryPhone,
	}
	result, err := f.gateway.LockEscrow(ctx, item.OrderItemID, params.Memo, contact)
	if err != nil {
		return nil, fmt.Errorf("lock escrow for order item %d: %w", item.OrderItemID, err)
	}
	return result, nil
}

func (f *Factory) completeEscrow(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.CompleteEscrow(ctx, item.OrderItemID, params.Memo)
	if err != nil {
		return nil, fmt.Errorf("complete escrow for order item %d: %w", item.OrderItemID, err)
	}
	return result, nil
}

func (f *Factory) shipItem(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.ShipItem(ctx, item.OrderItemID, params.Memo)
	if err != nil {
		return nil, fmt.Errorf("ship order item %d: %w", item.OrderItemID, err)
	}
	return result, nil
}

func (f *Factory) releaseEscrow(ctx context.Context, item entities.OrderItem, params entities.ActionTransitionParams) (*entities.TransitionResult, error) {
	result, err := f.gateway.ReleaseEscrow(ctx, item.OrderItemID, params.Memo)
	if err != nil {
		return nil, fmt.Errorf("release escrow for order item %d: %w", item.OrderItemID, err)
	}
	return result, nil
}
