package order

import (
	"context"
	"fmt"
	"sync/atomic"

	"market/internal/entities"
	"market/pkg/logger"
)

// Service владеет кешем заказов. Кеш заменяется только целиком новым снимком;
// действия над заказом его не трогают, правду приносит следующий опрос.
type Service struct {
	log       handlerLogger
	registry  Registry
	notifier  Notifier
	refresher Refresher
	address   string

	snapshot atomic.Pointer[entities.OrderSnapshot]
}

func New(log handlerLogger, registry Registry, notifier Notifier, refresher Refresher, identityAddress string) *Service {
	return &Service{
		log:       log,
		registry:  registry,
		notifier:  notifier,
		refresher: refresher,
		address:   identityAddress,
	}
}

// Consume применяет снимки из канала, пока он не закрыт или не отменен ctx.
// Потребитель должен быть один.
func (s *Service) Consume(ctx context.Context, snapshots <-chan entities.OrderSnapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-snapshots:
			if !ok {
				s.log.Info("order snapshot channel closed")
				return
			}
			s.ApplySnapshot(ctx, snapshot)
		}
	}
}

func (s *Service) ApplySnapshot(ctx context.Context, snapshot entities.OrderSnapshot) {
	items := make([]entities.OrderItem, len(snapshot.Items))
	for i := range snapshot.Items {
		items[i] = snapshot.Items[i].Clone()
	}
	owned := entities.OrderSnapshot{
		Items:     items,
		FetchedAt: snapshot.FetchedAt,
	}
	s.snapshot.Store(&owned)

	s.log.Debug("order snapshot applied",
		logger.NewField("items", len(items)),
		logger.NewField("fetched_at", snapshot.FetchedAt),
	)

	if err := s.notifier.Process(ctx, owned); err != nil {
		s.log.With(
			logger.NewField("error", err),
		).Warn("order status notification")
	}
}

// Orders возвращает заказы, в которых identity выступает в роли role.
func (s *Service) Orders(role entities.OrderUserType) ([]entities.OrderItemView, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	views := make([]entities.OrderItemView, 0)
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return views, nil
	}

	for _, item := range snapshot.Items {
		itemRole, ok := item.RoleOf(s.address)
		if !ok || itemRole != role {
			continue
		}
		views = append(views, s.view(item.Clone(), role))
	}
	return views, nil
}

func (s *Service) OrderItem(orderItemID int64) (*entities.OrderItem, error) {
	snapshot := s.snapshot.Load()
	if snapshot == nil {
		return nil, fmt.Errorf("%w: %d, orders not loaded yet", ErrOrderNotFound, orderItemID)
	}

	for _, item := range snapshot.Items {
		if item.OrderItemID == orderItemID {
			found := item.Clone()
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, orderItemID)
}

func (s *Service) Status() entities.OrderListStatus {
	status := entities.OrderListStatus{
		LastFetchFailed: s.refresher.LastFailed(),
	}

	if snapshot := s.snapshot.Load(); snapshot != nil {
		status.Loaded = true
		status.FetchedAt = snapshot.FetchedAt
		status.Total = len(snapshot.Items)
	}
	return status
}

// ActionOrderItem выполняет действие над заказом из кеша и просит внеочередной опрос.
// Возвращенный заказ - реконструкция после перехода, в кеш он не попадает.
func (s *Service) ActionOrderItem(ctx context.Context, action entities.OrderAction) (*entities.OrderItemView, error) {
	if action.OrderItemID <= 0 || action.ToState == "" {
		return nil, fmt.Errorf("%w: order item id and target state are required", ErrInvalidAction)
	}
	if !action.Role.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, action.Role)
	}

	item, err := s.OrderItem(action.OrderItemID)
	if err != nil {
		return nil, err
	}

	itemRole, ok := item.RoleOf(s.address)
	if !ok || itemRole != action.Role {
		return nil, fmt.Errorf("%w: order item %d as %s", ErrRoleMismatch, item.OrderItemID, action.Role)
	}

	updated, err := s.registry.ActionOrderItem(ctx, *item, action.ToState, action.Role, action.Params)
	if err != nil {
		return nil, fmt.Errorf("action order item %d: %w", item.OrderItemID, err)
	}

	s.log.With(
		logger.NewField("order_item_id", item.OrderItemID),
		logger.NewField("from", item.Status),
		logger.NewField("to", updated.Status),
		logger.NewField("role", action.Role),
	).Info("order item actioned")

	s.refresher.Refresh()

	view := s.view(*updated, action.Role)
	return &view, nil
}

func (s *Service) view(item entities.OrderItem, role entities.OrderUserType) entities.OrderItemView {
	return entities.OrderItemView{
		Item:         item,
		Role:         role,
		CurrentState: s.registry.StateDetails(item.Buyflow, item.Status, role),
	}
}
