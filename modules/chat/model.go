package chat

// Message - oturum transkriptinin bir satırı
type Message struct {
	Role string `json:"role"` // user | model
	Text string `json:"text"`
}

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// IncomingMessage - WebSocket üzerinden gelen kullanıcı mesajı
type IncomingMessage struct {
	Message string `json:"message"`
}

// Event - WebSocket üzerinden istemciye giden olay
type Event struct {
	Type      string `json:"type"` // greeting | chunk | done | error
	Text      string `json:"text,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	ErrorCode string `json:"errorCode,omitempty"`
}

const (
	EventGreeting = "greeting"
	EventChunk    = "chunk"
	EventDone     = "done"
	EventError    = "error"
)
