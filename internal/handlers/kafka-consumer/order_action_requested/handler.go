package order_action_requested

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"market/internal/entities"
	"market/internal/pkg/validation"
	"market/internal/service/buyflow"
	"market/internal/service/order"
	"market/pkg/logger"
)

type Handler struct {
	service                  Service
	validator                Validator
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, service Service, validator Validator, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		service:                  service,
		validator:                validator,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.action.requested: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.action.requested: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если ConsumeClaim нужно прервать: сообщение не помечается
// и будет прочитано заново после перезапуска.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event requestedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("offset", message.Offset),
			logger.NewField("error", err),
		).Error("order.action.requested handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	err = h.validator.Struct(event)
	if err != nil {
		h.log.With(
			logger.NewField("offset", message.Offset),
			logger.NewField("fields", validation.Fields(err)),
		).Error("order.action.requested handler received invalid message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_item_id", event.OrderItemID),
		logger.NewField("to_state", event.ToState),
		logger.NewField("role", event.Role),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.action.requested processing")

	view, err := h.service.ActionOrderItem(ctx, entities.OrderAction{
		OrderItemID: event.OrderItemID,
		ToState:     entities.BuyFlowOrderType(event.ToState),
		Role:        entities.OrderUserType(event.Role),
		Params: entities.ActionTransitionParams{
			DeliveryEmail: event.Params.DeliveryEmail,
			DeliveryPhone: event.Params.DeliveryPhone,
			Memo:          event.Params.Memo,
		},
	})
	if err != nil {
		sessionDone := sess.Context().Err() != nil
		// команда могла уйти в демон: повторное чтение отправило бы ее второй раз
		transitionSent := errors.Is(err, buyflow.ErrTransitionFailed)

		switch {
		case sessionDone && !transitionSent:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.action.requested handler session closed, message will be reprocessed")
			return true

		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.action.requested handler timed out, message committed without retry")
			sess.MarkMessage(message, "")
			return sessionDone

		case errors.Is(err, order.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.action.requested handler order item not found")

		case errors.Is(err, order.ErrRoleMismatch),
			errors.Is(err, order.ErrInvalidAction),
			errors.Is(err, buyflow.ErrIllegalTransition),
			errors.Is(err, buyflow.ErrInvalidRole):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.action.requested handler rejected action")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.action.requested handler failed to action order item")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order_item_id", view.Item.OrderItemID),
		logger.NewField("requested_state", event.ToState),
		logger.NewField("current_state", view.CurrentState.State.StateID),
		logger.NewField("offset", message.Offset),
	).Info("order.action.requested: processed")

	sess.MarkMessage(message, "")
	return false
}
