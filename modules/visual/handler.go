package visual

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/cost"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Generate - POST /api/generate/visual
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeResponse(w, http.StatusBadRequest, Response{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Geçersiz istek gövdesi.",
		})
		return
	}

	result, warning, err := h.service.Submit(r.Context(), req)
	if err != nil {
		log.WithField("kind", apperr.KindOf(err)).Warn("visual generation rejected or failed")
		writeResponse(w, apperr.HTTPStatus(err), Response{
			Success:      false,
			ErrorCode:    string(apperr.KindOf(err)),
			ErrorMessage: apperr.MessageOf(err),
		})
		return
	}

	display := cost.Estimate(result.Kind, result.Usage).Display()
	writeResponse(w, http.StatusOK, Response{
		Success: true,
		Result:  result,
		Cost:    &display,
		Warning: warning,
	})
}

// Status - GET /api/generate/visual/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	state, msg := h.service.Tracker().Snapshot()
	writeResponse(w, http.StatusOK, StatusResponse{
		State:        string(state),
		ErrorMessage: msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
