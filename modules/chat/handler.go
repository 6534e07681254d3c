package chat

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/brand"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service  *Service
	sessions *SessionStore
}

func NewHandler(service *Service, sessions *SessionStore) *Handler {
	return &Handler{service: service, sessions: sessions}
}

// ServeWS - GET /api/chat/ws
// Bağlantı başına bir oturum: karşılama mesajıyla açılır, bağlantı
// kapanınca transkript atılır.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("❌ WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	h.sessions.Open(sessionID)
	defer h.sessions.Close(sessionID)

	log.Infof("💬 Chat session opened: %s", sessionID)

	if err := conn.WriteJSON(Event{Type: EventGreeting, Text: brand.ChatGreeting, SessionID: sessionID}); err != nil {
		return
	}

	for {
		var incoming IncomingMessage
		if err := conn.ReadJSON(&incoming); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Warn("WebSocket read error")
			}
			return
		}

		if incoming.Message == "" {
			conn.WriteJSON(Event{Type: EventError, ErrorCode: string(apperr.KindValidation), Text: "Mesaj boş olamaz."})
			continue
		}

		if !h.sessions.TryBeginStream(sessionID) {
			conn.WriteJSON(Event{Type: EventError, ErrorCode: string(apperr.KindBusy), Text: "Devam eden bir yanıt var, lütfen bekleyin."})
			continue
		}

		h.handleMessage(r.Context(), conn, sessionID, incoming.Message)
		h.sessions.EndStream(sessionID)
	}
}

func (h *Handler) handleMessage(parent context.Context, conn *websocket.Conn, sessionID, message string) {
	h.sessions.Append(sessionID, Message{Role: RoleUser, Text: message})
	history := h.sessions.Snapshot(sessionID)

	// Yazma hatası akışı parçalar arasında iptal eder; ağ çağrısı da bırakılır
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	full, err := h.service.Stream(ctx, history, func(chunk string) {
		if writeErr := conn.WriteJSON(Event{Type: EventChunk, Text: chunk}); writeErr != nil {
			cancel()
		}
	})

	if err != nil {
		// Teslim edilen kısım transkriptte kalır; tek bir özür mesajı eklenir
		if full != "" {
			h.sessions.Append(sessionID, Message{Role: RoleModel, Text: full})
		}
		h.sessions.Append(sessionID, Message{Role: RoleModel, Text: brand.ChatFallback})
		conn.WriteJSON(Event{
			Type:      EventError,
			ErrorCode: string(apperr.KindOf(err)),
			Text:      brand.ChatFallback,
		})
		return
	}

	h.sessions.Append(sessionID, Message{Role: RoleModel, Text: full})
	conn.WriteJSON(Event{Type: EventDone, Text: full})
}
