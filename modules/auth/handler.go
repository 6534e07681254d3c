package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/store"
)

// LoginRequest - giriş isteği
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response - auth uç noktalarının ortak yanıtı
type Response struct {
	Success       bool   `json:"success"`
	Authenticated bool   `json:"authenticated"`
	ErrorCode     string `json:"errorCode,omitempty"`
	ErrorMessage  string `json:"errorMessage,omitempty"`
}

type Handler struct {
	store    store.Store
	username string
	password string
}

func NewHandler(st store.Store, username, password string) *Handler {
	return &Handler{store: st, username: username, password: password}
}

// Login - POST /api/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Geçersiz istek gövdesi.",
		})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		log.Warnf("🔒 Login failed for user %q", req.Username)
		writeJSON(w, http.StatusUnauthorized, Response{
			Success:      false,
			ErrorCode:    string(apperr.KindValidation),
			ErrorMessage: "Hatalı kullanıcı adı veya şifre!",
		})
		return
	}

	// Oturum kaydı en-iyi-çaba; depo hatası girişi engellemez
	if err := h.store.Set(r.Context(), store.KeyAuth, "true"); err != nil {
		log.WithError(err).Warn("⚠️  Auth state persist failed")
	}

	log.Info("🔓 Login successful")
	writeJSON(w, http.StatusOK, Response{Success: true, Authenticated: true})
}

// Logout - POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Remove(r.Context(), store.KeyAuth); err != nil {
		log.WithError(err).Warn("⚠️  Auth state remove failed")
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Authenticated: false})
}

// Status - GET /api/auth/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	value, found, err := h.store.Get(r.Context(), store.KeyAuth)
	if err != nil {
		writeJSON(w, apperr.HTTPStatus(apperr.Wrap(apperr.KindStorage, "", err)), Response{
			Success:      false,
			ErrorCode:    string(apperr.KindStorage),
			ErrorMessage: "Oturum durumu okunamadı.",
		})
		return
	}
	writeJSON(w, http.StatusOK, Response{Success: true, Authenticated: found && value == "true"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
