package settings_get

import (
	"encoding/json"
	"net/http"

	"market/internal/generated/dto"
	"market/internal/handlers/rest/converters"
	"market/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Settings(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list settings")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.SettingList{
		Settings: converters.Settings(settings),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
