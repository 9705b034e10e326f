package ping_get

import (
	"encoding/json"
	"net/http"

	"market/internal/generated/dto"
	"market/pkg/logger"
)

type Handler struct {
	log    handlerLogger
	daemon Daemon
}

func New(log handlerLogger, daemon Daemon) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:    handlerLog,
		daemon: daemon,
	}
}

// ServeHTTP отвечает pong, если демон маркета доступен.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		status int
		body   any
	)

	err := h.daemon.Ping(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("daemon ping failed")

		status = http.StatusServiceUnavailable
		body = dto.ErrorResponse{Message: "daemon unavailable"}
	} else {
		message := "pong"
		status = http.StatusOK
		body = dto.PingResponse{Message: &message}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
