package order_action_post

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
	"market/internal/entities"
	"market/internal/generated/dto"
	"market/internal/handlers/rest/converters"
	"market/internal/pkg/validation"
	"market/internal/service/buyflow"
	"market/internal/service/order"
	"market/pkg/logger"
)

type Handler struct {
	log       handlerLogger
	service   Service
	validator Validator
}

func New(log handlerLogger, service Service, validator Validator) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:       handlerLog,
		service:   service,
		validator: validator,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderItemID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || orderItemID <= 0 {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "order item id must be a positive integer",
		})
		return
	}

	var request dto.ActionOrderItemJSONRequestBody
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			Message: "invalid JSON body",
		})
		return
	}

	err = h.validator.Struct(request)
	if err != nil {
		response := dto.ErrorResponse{Message: "validation failed"}
		if fields := validation.Fields(err); fields != nil {
			response.Fields = pointer.To(fields)
		}
		h.writeJSON(w, http.StatusBadRequest, response)
		return
	}

	view, err := h.service.ActionOrderItem(r.Context(), entities.OrderAction{
		OrderItemID: orderItemID,
		ToState:     entities.BuyFlowOrderType(request.ToState),
		Role:        entities.OrderUserType(request.Role),
		Params:      converters.OrderActionParams(request.Params),
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.log.With(
				logger.NewField("order_item_id", orderItemID),
				logger.NewField("to_state", request.ToState),
				logger.NewField("error", err),
			).Error("action order item")
		}
		h.writeJSON(w, status, dto.ErrorResponse{Message: err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, converters.OrderItemView(*view))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrInvalidAction),
		errors.Is(err, order.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrRoleMismatch):
		return http.StatusForbidden
	case errors.Is(err, buyflow.ErrIllegalTransition),
		errors.Is(err, buyflow.ErrInvalidRole):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, buyflow.ErrTransitionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
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
