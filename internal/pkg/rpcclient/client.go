package rpcclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"market/internal/pkg/config"
	"market/pkg/jsonrpc"
	"market/pkg/logger"
	retrierconfig "market/pkg/retrier"
	"market/pkg/retrier/backoff_adapter"
)

const (
	maxIdleConnsPerHost = 4
	idleConnTimeout     = 90 * time.Second

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 5 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

// NewClient создает клиент демона и ждет, пока демон начнет отвечать.
// Демон после старта долго отвечает кодом warmup, поэтому ожидание длиннее обычных повторов.
func NewClient(ctx context.Context, log logger.Logger, cfg *config.Daemon) (*jsonrpc.Client, error) {
	client := jsonrpc.New(
		cfg.URL,
		jsonrpc.WithBasicAuth(cfg.User, cfg.Password),
		jsonrpc.WithHTTPClient(&http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		}),
	)

	rpcLog := log.With(
		logger.NewField("component", "rpc-client"),
		logger.NewField("url", cfg.URL),
	)

	if err := pingDaemon(ctx, rpcLog, client); err != nil {
		return nil, fmt.Errorf("daemon connection: %w", err)
	}

	return client, nil
}

func pingDaemon(ctx context.Context, log logger.Logger, client *jsonrpc.Client) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     jsonrpc.IsRetryable,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting daemon connection")

		return client.Call(ctx, "getblockchaininfo", nil, nil)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("daemon connection failed after retries")
		return fmt.Errorf("failed to reach daemon: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("daemon connection established")
	return nil
}
