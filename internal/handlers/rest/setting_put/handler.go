package setting_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"market/internal/generated/dto"
	"market/internal/handlers/rest/converters"
	"market/internal/service/settings"
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
	path := mux.Vars(r)["path"]

	var request dto.UpdateSettingJSONRequestBody
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "invalid JSON body"})
		return
	}
	if request.Value == nil {
		h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: "value is required"})
		return
	}

	setting, err := h.service.Set(r.Context(), path, request.Value)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrUnknownSetting):
			h.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{Message: err.Error()})
		case errors.Is(err, settings.ErrInvalidSettingValue):
			h.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		default:
			h.log.With(
				logger.NewField("path", path),
				logger.NewField("error", err),
			).Error("update setting")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converters.Setting(*setting))
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
