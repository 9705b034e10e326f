package app

import (
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
	marketGateway "market/internal/gateway/rpc/market"
	"market/internal/entities"
	"market/internal/service/buyflow"
	notifierService "market/internal/service/notifier"
	orderService "market/internal/service/order"
	settingsService "market/internal/service/settings"
	"market/pkg/background"
)

type (
	SnapshotInterval time.Duration
)

type OrderPoller = background.Poller[entities.OrderSnapshot]

type Application struct {
	Registry  *buyflow.Registry
	Orders    *orderService.Service
	Notifier  *notifierService.Service
	Settings  *settingsService.Service
	Gateway   *marketGateway.MarketGateway
	Poller    *OrderPoller
	Validator *validatorv10.Validate
}

type KafkaWorkerApp struct {
	Orders    *orderService.Service
	Poller    *OrderPoller
	Validator *validatorv10.Validate
}
