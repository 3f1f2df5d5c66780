package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-flex-kit/internal/logger"
	"github.com/MKhiriev/go-flex-kit/internal/utils"
	"github.com/MKhiriev/go-flex-kit/models"
)

// maxPredictionSize bounds the details request body.
const maxPredictionSize = 64 << 10

func (h *Handler) predictions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	search := r.URL.Query().Get("search")
	result, err := h.places.Predictions(r.Context(), search)
	if err != nil {
		h.writeError(w, r, err, "error getting predictions")
		return
	}

	log.Debug().Str("search", search).Int("predictions", len(result.Predictions)).Msg("predictions served")
	_, _ = utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) details(w http.ResponseWriter, r *http.Request) {
	var prediction models.Prediction
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPredictionSize)).Decode(&prediction); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid prediction body")
		utils.WriteError(w, errInvalidJSON.Error(), statusFromError(errInvalidJSON))
		return
	}

	place, err := h.places.Details(r.Context(), prediction)
	if err != nil {
		h.writeError(w, r, err, "error getting place details")
		return
	}

	_, _ = utils.WriteJSON(w, place, http.StatusOK)
}

func (h *Handler) defaults(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.places.Defaults(r.Context()), http.StatusOK)
}

// writeError logs err and writes it with the status from the error table.
// Server side failures are reported with msg only, so upstream details stay
// in the logs.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Int("status", status).Msg(msg)

	if status >= http.StatusInternalServerError {
		utils.WriteError(w, msg, status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
