package chat

import (
	"sync"
	"time"

	"can-kuruyemis-server/modules/common/brand"
)

// session - tek bağlantının transkripti; oturumlar arası kalıcı değildir
type session struct {
	history      []Message
	streaming    bool
	lastActivity time.Time
}

// SessionStore - bellek içi oturum deposu. Oturum başına en fazla bir
// aktif akış; transkript maxHistory ile sınırlanır.
type SessionStore struct {
	mu         sync.Mutex
	sessions   map[string]*session
	maxHistory int
}

func NewSessionStore(maxHistory int) *SessionStore {
	if maxHistory <= 0 {
		maxHistory = 40
	}
	return &SessionStore{
		sessions:   make(map[string]*session),
		maxHistory: maxHistory,
	}
}

// Open - yeni oturum aç; transkript asistanın karşılama mesajıyla başlar
func (s *SessionStore) Open(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{
		history:      []Message{{Role: RoleModel, Text: brand.ChatGreeting}},
		lastActivity: time.Now(),
	}
}

// Close - oturumu kaldır
func (s *SessionStore) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Snapshot - transkriptin kopyası
func (s *SessionStore) Snapshot(id string) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil
	}
	history := make([]Message, len(sess.history))
	copy(history, sess.history)
	return history
}

// Append - mesajları transkripte ekle; üst sınırı aşan eski mesajlar düşer
func (s *SessionStore) Append(id string, msgs ...Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return
	}
	sess.lastActivity = time.Now()
	sess.history = append(sess.history, msgs...)
	if len(sess.history) > s.maxHistory {
		sess.history = sess.history[len(sess.history)-s.maxHistory:]
	}
}

// TryBeginStream - oturumda akış başlat; zaten akış varsa false
func (s *SessionStore) TryBeginStream(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.streaming {
		return false
	}
	sess.streaming = true
	return true
}

// EndStream - aktif akışı kapat
func (s *SessionStore) EndStream(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.streaming = false
	}
}
