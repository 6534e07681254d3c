// Package flight tek seferde tek istek yaşam döngüsü.
// Durum makinesi: Idle → Loading → {Success, Error}; yeni istek Loading'e
// geri döner. Loading sırasında gelen istek kuyruklanmaz, reddedilir.
package flight

import "sync"

type State string

const (
	StateIdle    State = "IDLE"
	StateLoading State = "LOADING"
	StateSuccess State = "SUCCESS"
	StateError   State = "ERROR"
)

// Tracker - bir üretim servisinin uçuş durumu
type Tracker struct {
	mu      sync.Mutex
	state   State
	message string // Error durumundaki kullanıcı mesajı
}

func NewTracker() *Tracker {
	return &Tracker{state: StateIdle}
}

// Begin - Loading'e geç; zaten Loading ise false döner ve durum değişmez
func (t *Tracker) Begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateLoading {
		return false
	}
	t.state = StateLoading
	t.message = ""
	return true
}

// Succeed - Loading → Success
func (t *Tracker) Succeed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateSuccess
}

// Fail - Loading → Error; message kullanıcıya gösterilir
func (t *Tracker) Fail(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = StateError
	t.message = message
}

// Snapshot - mevcut durum ve hata mesajı
func (t *Tracker) Snapshot() (State, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.message
}
