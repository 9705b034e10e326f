package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"market/internal/entities"
	"market/pkg/jsonrpc"
	retrierconfig "market/pkg/retrier"
	"market/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "market-daemon"
	rpcMethod   = "mp"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0

	defaultMaxAttempts = 3
	searchPageLimit    = 100
	// защита от демона, который бесконечно отдает полные страницы
	maxSearchPages = 50
)

// ErrSearchPageLimit - демон отдал полные страницы до предела maxSearchPages.
var ErrSearchPageLimit = errors.New("order search page limit reached")

type MarketGateway struct {
	client  client
	retrier retrier
}

// New: maxAttempts - общее число попыток для чтений (1-5). Команды перехода
// отправляются ровно один раз.
func New(client client, maxAttempts uint64) *MarketGateway {
	if maxAttempts == 0 {
		maxAttempts = defaultMaxAttempts
	}

	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxAttempts:     maxAttempts,
		ShouldRetry:     jsonrpc.IsRetryable,
	}

	return &MarketGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// SearchOrderItems читает все ставки identity постранично. Битые записи пропускаются.
func (g *MarketGateway) SearchOrderItems(ctx context.Context, identityID int64) ([]entities.OrderItem, error) {
	items := make([]entities.OrderItem, 0)

	for page := 0; page < maxSearchPages; page++ {
		var records []bidRecord
		params := []any{"bid", "search", page, searchPageLimit, "ASC", identityID}

		err := g.executeWithMetrics(ctx, "bid.search", g.retrier, func(ctx context.Context) error {
			records = nil
			return g.client.Call(ctx, rpcMethod, params, &records)
		})
		if err != nil {
			return nil, fmt.Errorf("gateway market, search order items, page %d: %w", page, err)
		}

		converted, skipped := toDomainList(records)
		for _, reason := range skipped {
			GatewayMalformedRecordsTotal.WithLabelValues(serviceName, "bid.search", reason.Error()).Inc()
		}
		items = append(items, converted...)

		if len(records) < searchPageLimit {
			return items, nil
		}
	}

	// неполный список не должен заменить кеш целиком
	return nil, fmt.Errorf("gateway market, search order items: %w: %d pages", ErrSearchPageLimit, maxSearchPages)
}

func (g *MarketGateway) AcceptBid(ctx context.Context, identityID, bidID int64) (*entities.TransitionResult, error) {
	return g.transition(ctx, "bid.accept", []any{"bid", "accept", bidID, identityID})
}

func (g *MarketGateway) RejectBid(ctx context.Context, identityID, bidID int64, reason string) (*entities.TransitionResult, error) {
	params := []any{"bid", "reject", bidID, identityID}
	if reason != "" {
		params = append(params, reason)
	}
	return g.transition(ctx, "bid.reject", params)
}

func (g *MarketGateway) CancelBid(ctx context.Context, identityID, bidID int64) (*entities.TransitionResult, error) {
	return g.transition(ctx, "bid.cancel", []any{"bid", "cancel", bidID, identityID})
}

func (g *MarketGateway) LockEscrow(
	ctx context.Context,
	orderItemID int64,
	memo string,
	contact entities.ContactDetails,
) (*entities.TransitionResult, error) {
	params := []any{"escrow", "lock", orderItemID, memo}
	if contact != (entities.ContactDetails{}) {
		params = append(params, contactParams{
			DeliveryEmail: contact.Email,
			DeliveryPhone: contact.Phone,
		})
	}
	return g.transition(ctx, "escrow.lock", params)
}

func (g *MarketGateway) CompleteEscrow(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error) {
	return g.transition(ctx, "escrow.complete", []any{"escrow", "complete", orderItemID, memo})
}

func (g *MarketGateway) ShipItem(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error) {
	return g.transition(ctx, "orderitem.ship", []any{"orderitem", "ship", orderItemID, memo})
}

func (g *MarketGateway) ReleaseEscrow(ctx context.Context, orderItemID int64, memo string) (*entities.TransitionResult, error) {
	return g.transition(ctx, "escrow.release", []any{"escrow", "release", orderItemID, memo})
}

// Ping - дешевый вызов для проверки доступности демона.
func (g *MarketGateway) Ping(ctx context.Context) error {
	err := g.executeWithMetrics(ctx, "getblockchaininfo", once{}, func(ctx context.Context) error {
		return g.client.Call(ctx, "getblockchaininfo", nil, nil)
	})
	if err != nil {
		return fmt.Errorf("gateway market, ping: %w", err)
	}
	return nil
}

func (g *MarketGateway) transition(ctx context.Context, method string, params []any) (*entities.TransitionResult, error) {
	var resp transitionResponse

	err := g.executeWithMetrics(ctx, method, once{}, func(ctx context.Context) error {
		return g.client.Call(ctx, rpcMethod, params, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway market, %s: %w", method, err)
	}

	return toTransitionResult(&resp), nil
}

// once - retrier без повторов для команд, которые нельзя безопасно повторить.
type once struct{}

func (once) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (g *MarketGateway) executeWithMetrics(ctx context.Context, method string, r retrier, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Add(float64(attempt - 1))
	}

	return err
}

func getRPCCode(err error) string {
	if err == nil {
		return "OK"
	}

	var rpcErr *jsonrpc.Error
	if errors.As(err, &rpcErr) {
		return strconv.Itoa(rpcErr.Code)
	}
	var httpErr *jsonrpc.HTTPError
	if errors.As(err, &httpErr) {
		return http.StatusText(httpErr.StatusCode)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "CANCELED"
	}
	return "UNKNOWN"
}
