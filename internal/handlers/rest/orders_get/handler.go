package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"market/internal/entities"
	"market/internal/generated/dto"
	"market/internal/handlers/rest/converters"
	"market/internal/service/notifier"
	"market/internal/service/order"
	"market/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	counter ActiveCounter
}

func New(log handlerLogger, service Service, counter ActiveCounter) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		counter: counter,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	role := entities.OrderUserType(r.URL.Query().Get("role"))

	views, err := h.service.Orders(role)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidRole):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
				Message: "role query parameter must be BUYER or SELLER",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list orders")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	kind := notifier.KindBuy
	if role == entities.UserSeller {
		kind = notifier.KindSell
	}

	h.writeJSON(w, http.StatusOK, dto.OrderList{
		Role:        role.String(),
		Items:       converters.OrderItemViews(views),
		Status:      converters.OrderListStatus(h.service.Status()),
		ActiveCount: h.counter.ActiveCount(kind),
	})
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
