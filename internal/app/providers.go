package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	notificationSink "market/internal/gateway/kafka/notification"
	marketGateway "market/internal/gateway/rpc/market"
	"market/internal/entities"
	"market/internal/handlers/tasks/order_snapshot"
	"market/internal/pkg/config"
	"market/internal/pkg/factory/transition"
	settingsRepo "market/internal/repository/settings"
	"market/internal/service/buyflow"
	notifierService "market/internal/service/notifier"
	orderService "market/internal/service/order"
	settingsService "market/internal/service/settings"
	"market/pkg/background"
	"market/pkg/jsonrpc"
	"market/pkg/logger"
	"market/pkg/querier"
	"market/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSettingsRepository(querier settingsRepo.Querier) *settingsRepo.Repository {
	return settingsRepo.New(querier)
}

func provideSettingsService(
	log logger.Logger,
	repository settingsService.Repository,
	txManager settingsService.TxManager,
) *settingsService.Service {
	return settingsService.New(log, repository, txManager)
}

func provideMarketGateway(client *jsonrpc.Client, cfg *config.Config) *marketGateway.MarketGateway {
	return marketGateway.New(client, cfg.Daemon.MaxRetryAttempts)
}

func provideTransitionFactory(gateway transition.MarketGateway, cfg *config.Config) *transition.Factory {
	return transition.New(gateway, cfg.Market.IdentityID)
}

// provideRegistry собирает реестр из встроенных объявлений buyflow.
// Ошибка означает неконсистентное объявление и должна останавливать запуск.
func provideRegistry(factory buyflow.TransitionFactory) (*buyflow.Registry, error) {
	return buyflow.New(factory, buyflow.DefaultDeclarations()...)
}

func provideSnapshotInterval(cfg *config.Config) SnapshotInterval {
	return SnapshotInterval(cfg.Tasks.OrderSnapshotInterval)
}

func provideOrderSnapshotTask(
	gateway order_snapshot.Gateway,
	cfg *config.Config,
	interval SnapshotInterval,
) *order_snapshot.OrderSnapshot {
	return order_snapshot.NewOrderSnapshot(gateway, cfg.Market.IdentityID, time.Duration(interval))
}

func provideOrderPoller(log logger.Logger, task *order_snapshot.OrderSnapshot) *OrderPoller {
	return background.NewPoller[entities.OrderSnapshot](log, task)
}

func provideNotificationSink(log logger.Logger, producer sarama.SyncProducer, cfg *config.Config) *notificationSink.Sink {
	return notificationSink.New(log, producer, cfg.Kafka.NotificationsTopic, cfg.Market.IdentityID)
}

func provideNotifierService(
	log logger.Logger,
	sink notifierService.NotificationSink,
	settings notifierService.SettingsStore,
	cfg *config.Config,
) *notifierService.Service {
	return notifierService.New(log, sink, settings, cfg.Market.IdentityAddress)
}

func provideSilentNotifier() orderService.NotifierFunc {
	return func(context.Context, entities.OrderSnapshot) error {
		return nil
	}
}

func provideOrderService(
	log logger.Logger,
	registry orderService.Registry,
	notifier orderService.Notifier,
	refresher orderService.Refresher,
	cfg *config.Config,
) *orderService.Service {
	return orderService.New(log, registry, notifier, refresher, cfg.Market.IdentityAddress)
}
