package archive

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/model"
	"can-kuruyemis-server/modules/common/store"
)

// Service - kaydedilen üretimlerin arşivi. Bellek içi liste asıl kaynaktır;
// depoya yazım en-iyi-çaba niteliğindedir, başarısızlıkta geri alma yoktur.
type Service struct {
	mu    sync.Mutex
	items []SavedItem
	store store.Store
}

// NewService - arşivi depodan yükleyerek başlat
func NewService(ctx context.Context, st store.Store) *Service {
	s := &Service{store: st}

	raw, found, err := st.Get(ctx, store.KeyArchive)
	if err != nil {
		log.WithError(err).Warn("⚠️  Archive load failed, starting empty")
		return s
	}
	if found {
		if err := json.Unmarshal([]byte(raw), &s.items); err != nil {
			log.WithError(err).Warn("⚠️  Archive payload corrupt, starting empty")
			s.items = nil
		}
	}

	log.Infof("📦 Archive loaded: %d items", len(s.items))
	return s
}

// Save - yeni kayıt oluşturup listenin başına ekler ve tüm listeyi yazar.
// Dönen hata yalnızca Storage türündedir; kayıt bellekte yine de durur.
func (s *Service) Save(ctx context.Context, kind model.ResultKind, content, title string) (SavedItem, error) {
	item := SavedItem{
		ID:        uuid.NewString(),
		Kind:      kind,
		Content:   content,
		Title:     title,
		CreatedAt: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	s.items = append([]SavedItem{item}, s.items...)
	s.mu.Unlock()

	return item, s.persist(ctx)
}

// Delete - eşleşen kaydı kaldırır ve listeyi yazar
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	found := false
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, item)
	}
	s.items = filtered
	s.mu.Unlock()

	if !found {
		return false, nil
	}
	return true, s.persist(ctx)
}

// List - en yeniden eskiye kayıt listesi (kopya)
func (s *Service) List() []SavedItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]SavedItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Service) persist(ctx context.Context) error {
	s.mu.Lock()
	data, err := json.Marshal(s.items)
	s.mu.Unlock()
	if err != nil {
		return apperr.Wrap(apperr.KindStorage, "Arşiv kaydedilemedi.", err)
	}

	if err := s.store.Set(ctx, store.KeyArchive, string(data)); err != nil {
		log.WithError(err).Warn("⚠️  Archive persist failed")
		return apperr.Wrap(apperr.KindStorage, "Arşiv kaydedilemedi.", err)
	}
	return nil
}
