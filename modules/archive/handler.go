package archive

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"can-kuruyemis-server/modules/common/apperr"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List - GET /api/archive
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ListResponse{Success: true, Items: h.service.List()})
}

// Save - POST /api/archive
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Geçersiz istek gövdesi.",
		})
		return
	}
	if req.Content == "" {
		writeJSON(w, http.StatusBadRequest, MutationResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Kaydedilecek içerik boş olamaz.",
		})
		return
	}

	item, err := h.service.Save(r.Context(), req.Kind, req.Content, req.Title)

	resp := MutationResponse{Success: true, Item: &item}
	if err != nil {
		// Kalıcılık hatası akışı durdurmaz; uyarı olarak taşınır
		resp.Warning = apperr.MessageOf(err)
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete - DELETE /api/archive/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	found, err := h.service.Delete(r.Context(), id)
	if !found {
		writeJSON(w, http.StatusNotFound, MutationResponse{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Kayıt bulunamadı.",
		})
		return
	}

	resp := MutationResponse{Success: true}
	if err != nil {
		resp.Warning = apperr.MessageOf(err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
