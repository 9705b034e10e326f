package buyflow_state_get

import (
	"encoding/json"
	"net/http"
	"strings"

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	buyflow := entities.ParseBuyFlowType(vars["buyflow"])
	// статусы от демона приводятся к верхнему регистру так же
	stateID := entities.BuyFlowOrderType(strings.ToUpper(strings.TrimSpace(vars["state"])))

	role := entities.OrderUserType(r.URL.Query().Get("role"))
	if !role.IsValid() {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "role query parameter must be BUYER or SELLER",
		})
		return
	}

	details := h.registry.StateDetails(buyflow, stateID, role)
	h.writeJSON(w, http.StatusOK, converters.BuyflowStateDetails(details))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
