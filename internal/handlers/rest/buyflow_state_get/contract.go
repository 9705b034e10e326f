//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=buyflow_state_get_test
package buyflow_state_get

import (
	"market/internal/entities"
	"market/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Registry interface {
	StateDetails(buyflow entities.BuyFlowType, stateID entities.BuyFlowOrderType, role entities.OrderUserType) entities.BuyflowStateDetails
}
