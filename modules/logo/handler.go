package logo

import (
	"encoding/json"
	"net/http"

	"can-kuruyemis-server/modules/common/apperr"
)

// UploadRequest - logo yükleme isteği
type UploadRequest struct {
	DataURI string `json:"dataUri"`
}

// Response - logo uç noktalarının ortak yanıtı
type Response struct {
	Success      bool   `json:"success"`
	Logo         string `json:"logo,omitempty"`
	ErrorCode    string `json:"errorCode,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get - GET /api/logo
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	value, found, err := h.service.Get(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if !found {
		writeJSON(w, http.StatusNotFound, Response{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Kayıtlı logo yok.",
		})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Logo: value})
}

// Upload - POST /api/logo
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Geçersiz istek gövdesi.",
		})
		return
	}

	if err := h.service.Upload(r.Context(), req.DataURI); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true})
}

// Remove - DELETE /api/logo
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Remove(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, apperr.HTTPStatus(err), Response{
		Success:      false,
		ErrorCode:    string(apperr.KindOf(err)),
		ErrorMessage: apperr.MessageOf(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
