package buyflow_states_get

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"market/internal/entities"
	"market/internal/generated/dto"
	"market/internal/handlers/rest/converters"
	"market/pkg/logger"
)

type Handler struct {
	log      handlerLogger
	registry Registry
}

func New(log handlerLogger, registry Registry) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		registry: registry,
	}
}

// ServeHTTP отдает состояния buyflow в порядке отображения.
// Для неизвестного buyflow список пустой, это не ошибка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buyflow := entities.ParseBuyFlowType(mux.Vars(r)["buyflow"])

	response := dto.BuyflowStateList{
		Buyflow: buyflow.String(),
		States:  converters.BuyflowStates(h.registry.OrderedStateList(buyflow)),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
