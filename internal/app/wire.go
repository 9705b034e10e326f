//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	notificationSink "market/internal/gateway/kafka/notification"
	marketGateway "market/internal/gateway/rpc/market"
	"market/internal/handlers/tasks/order_snapshot"
	"market/internal/pkg/config"
	"market/internal/pkg/factory/transition"
	"market/internal/pkg/validation"
	settingsRepo "market/internal/repository/settings"
	"market/internal/service/buyflow"
	notifierService "market/internal/service/notifier"
	orderService "market/internal/service/order"
	settingsService "market/internal/service/settings"
	"market/pkg/jsonrpc"
	"market/pkg/logger"
	"market/pkg/querier"
	"market/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	client *jsonrpc.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSettingsRepository,
		provideSettingsService,

		provideMarketGateway,
		provideTransitionFactory,
		provideRegistry,

		provideSnapshotInterval,
		provideOrderSnapshotTask,
		provideOrderPoller,

		provideNotificationSink,
		provideNotifierService,
		provideOrderService,

		validation.New,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(settingsService.Repository), new(*settingsRepo.Repository)),
		wire.Bind(new(settingsService.TxManager), new(*tx.Manager)),
		wire.Bind(new(settingsRepo.Querier), new(*querier.Querier)),

		wire.Bind(new(transition.MarketGateway), new(*marketGateway.MarketGateway)),
		wire.Bind(new(order_snapshot.Gateway), new(*marketGateway.MarketGateway)),
		wire.Bind(new(buyflow.TransitionFactory), new(*transition.Factory)),

		wire.Bind(new(notifierService.NotificationSink), new(*notificationSink.Sink)),
		wire.Bind(new(notifierService.SettingsStore), new(*settingsService.Service)),

		wire.Bind(new(orderService.Registry), new(*buyflow.Registry)),
		wire.Bind(new(orderService.Notifier), new(*notifierService.Service)),
		wire.Bind(new(orderService.Refresher), new(*OrderPoller)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-action-requested).
// Воркер не рассылает уведомления: этим занимается HTTP сервис.
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	client *jsonrpc.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideMarketGateway,
		provideTransitionFactory,
		provideRegistry,

		provideSnapshotInterval,
		provideOrderSnapshotTask,
		provideOrderPoller,

		provideSilentNotifier,
		provideOrderService,

		validation.New,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(transition.MarketGateway), new(*marketGateway.MarketGateway)),
		wire.Bind(new(order_snapshot.Gateway), new(*marketGateway.MarketGateway)),
		wire.Bind(new(buyflow.TransitionFactory), new(*transition.Factory)),

		wire.Bind(new(orderService.Registry), new(*buyflow.Registry)),
		wire.Bind(new(orderService.Notifier), new(orderService.NotifierFunc)),
		wire.Bind(new(orderService.Refresher), new(*OrderPoller)),
	)
	return nil, nil
}
