package notifier

import (
	"context"
	"fmt"
	"sync"
	"time"

	"market/internal/entities"
	"market/pkg/logger"
)

type Kind string

const (
	KindBuy  Kind = "buy"
	KindSell Kind = "sell"
)

var kinds = []Kind{KindBuy, KindSell}

var activeStates = map[entities.BuyFlowOrderType]struct{}{
	entities.OrderStateBidded:          {},
	entities.OrderStateAccepted:        {},
	entities.OrderStateEscrowLocked:    {},
	entities.OrderStateEscrowCompleted: {},
	entities.OrderStateShipped:         {},
}

// Статусы, о смене на которые стоит сообщить стороне сделки:
// там от нее ждут действия или сделка завершилась не в ее пользу.
var (
	buyerNotifyStates = map[entities.BuyFlowOrderType]struct{}{
		entities.OrderStateAccepted:        {},
		entities.OrderStateEscrowCompleted: {},
		entities.OrderStateShipped:         {},
		entities.OrderStateRejected:        {},
	}
	sellerNotifyStates = map[entities.BuyFlowOrderType]struct{}{
		entities.OrderStateBidded:       {},
		entities.OrderStateEscrowLocked: {},
		entities.OrderStateComplete:     {},
		entities.OrderStateCancelled:    {},
	}
)

type summary struct {
	active  int
	updated int
}

type Service struct {
	log      handlerLogger
	sink     NotificationSink
	settings SettingsStore
	address  string
	now      func() time.Time

	mu     sync.RWMutex
	active map[Kind]int
}

func New(log handlerLogger, sink NotificationSink, settings SettingsStore, identityAddress string) *Service {
	return &Service{
		log:      log,
		sink:     sink,
		settings: settings,
		address:  identityAddress,
		now:      time.Now,
		active:   make(map[Kind]int),
	}
}

// ActiveCount возвращает число незавершенных заказов вида kind по последнему снимку.
func (s *Service) ActiveCount(kind Kind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active[kind]
}

// Process пересчитывает сводку по снимку и отправляет уведомления
// о заказах, обновленных после последнего уведомления.
func (s *Service) Process(ctx context.Context, snapshot entities.OrderSnapshot) error {
	since, err := s.settings.Int64(ctx, entities.SettingOrdersNotificationTime)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSettingsRead, entities.SettingOrdersNotificationTime, err)
	}

	summaries := s.summarize(snapshot.Items, since)

	active := make(map[Kind]int, len(summaries))
	for kind, sum := range summaries {
		active[kind] = sum.active
	}
	s.mu.Lock()
	s.active = active
	s.mu.Unlock()

	hasUpdated := false
	for _, kind := range kinds {
		if summaries[kind].updated > 0 {
			hasUpdated = true
		}
	}
	if !hasUpdated {
		return nil
	}

	doNotify, err := s.settings.Bool(ctx, entities.SettingOrderUpdatedNotifications)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSettingsRead, entities.SettingOrderUpdatedNotifications, err)
	}

	if doNotify {
		for _, kind := range kinds {
			count := summaries[kind].updated
			if count == 0 {
				continue
			}
			message := fmt.Sprintf("%d %s order(s) have been updated.", count, kind)
			if err := s.sink.Send(ctx, message); err != nil {
				s.log.With(
					logger.NewField("kind", kind),
					logger.NewField("error", err),
				).Warn("send order notification")
			}
		}
	}

	if !s.settings.Update(ctx, entities.SettingOrdersNotificationTime, s.now().UnixMilli()) {
		return ErrTimestampNotSaved
	}
	return nil
}

func (s *Service) summarize(items []entities.OrderItem, since int64) map[Kind]summary {
	summaries := make(map[Kind]summary, len(kinds))

	for _, item := range items {
		role, ok := item.RoleOf(s.address)
		if !ok {
			continue
		}
		if item.Listing == nil || item.Listing.Hash == "" {
			continue
		}

		kind := KindBuy
		if role == entities.UserSeller {
			kind = KindSell
		}

		sum := summaries[kind]
		if isActive(item.Status) {
			sum.active++
		}
		if shouldNotify(item, role) && item.Updated.UnixMilli() > since {
			sum.updated++
		}
		summaries[kind] = sum
	}
	return summaries
}

func isActive(status entities.BuyFlowOrderType) bool {
	_, ok := activeStates[status]
	return ok
}

func shouldNotify(item entities.OrderItem, role entities.OrderUserType) bool {
	if role == entities.UserSeller {
		_, ok := sellerNotifyStates[item.Status]
		return ok
	}

	// в MAD_CT покупатель сам подтверждает escrow после продавца
	if item.Buyflow == entities.BuyFlowMadCT && item.Status == entities.OrderStateEscrowLocked {
		return true
	}
	_, ok := buyerNotifyStates[item.Status]
	return ok
}
