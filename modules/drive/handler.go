package drive

import (
	"encoding/json"
	"net/http"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/imgutil"
)

// UploadRequest - yükleme isteği; imageData data URI veya düz base64 olabilir
type UploadRequest struct {
	ImageData string `json:"imageData"`
	FileName  string `json:"fileName"`
}

// UploadResponse - yükleme yanıtı
type UploadResponse struct {
	Success      bool          `json:"success"`
	File         *UploadedFile `json:"file,omitempty"`
	ErrorCode    string        `json:"errorCode,omitempty"`
	ErrorMessage string        `json:"errorMessage,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload - POST /api/drive/upload
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, UploadResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Geçersiz istek gövdesi.",
		})
		return
	}

	data, mimeType, err := imgutil.DecodeImageInput(req.ImageData, "")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, UploadResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Görsel verisi çözümlenemedi.",
		})
		return
	}

	file, err := h.service.Upload(r.Context(), req.FileName, mimeType, data)
	if err != nil {
		writeJSON(w, apperr.HTTPStatus(err), UploadResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindOf(err)),
			ErrorMessage: apperr.MessageOf(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{Success: true, File: &file})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
