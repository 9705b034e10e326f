package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

type Handler struct {
	isShuttingDown *atomic.Bool
	orders         OrderStatus
}

func New(isShuttingDown *atomic.Bool, orders OrderStatus) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		orders:         orders,
	}
}

// ServeHTTP отвечает 503 при остановке и пока заказы ни разу не загрузились
// из-за ошибок опроса. Ошибка опроса при уже загруженных заказах не влияет:
// сервис отдает последний снимок.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	status := h.orders.Status()
	if !status.Loaded && status.LastFetchFailed {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
