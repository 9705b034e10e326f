package order_snapshot

import (
	"context"
	"fmt"
	"time"

	"market/internal/entities"
)

type OrderSnapshot struct {
	gateway    Gateway
	identityID int64
	interval   time.Duration
	now        func() time.Time
}

func NewOrderSnapshot(gateway Gateway, identityID int64, interval time.Duration) *OrderSnapshot {
	return &OrderSnapshot{
		gateway:    gateway,
		identityID: identityID,
		interval:   interval,
		now:        time.Now,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (o *OrderSnapshot) TTL() time.Duration {
	return o.interval
}

// Do забирает полный список заказов identity. Таймаут опроса равен интервалу,
// чтобы медленный демон не копил опросы.
func (o *OrderSnapshot) Do(ctx context.Context) (entities.OrderSnapshot, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	items, err := o.gateway.SearchOrderItems(ctxWithTimeout, o.identityID)
	if err != nil {
		return entities.OrderSnapshot{}, fmt.Errorf("order snapshot for identity %d: %w", o.identityID, err)
	}

	return entities.OrderSnapshot{
		Items:     items,
		FetchedAt: o.now(),
	}, nil
}

// Info возвращает читаемое описание задачи для логгирования и отладки.
func (o *OrderSnapshot) Info() string {
	return "order snapshot"
}
