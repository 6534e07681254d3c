package archive

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/model"
	"can-kuruyemis-server/modules/common/store"
)

func TestSaveOrdersMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, store.NewMemoryStore())

	for i, title := range []string{"ilk", "orta", "son"} {
		_, err := svc.Save(ctx, model.KindText, "içerik", title)
		require.NoError(t, err)
		if i < 2 {
			time.Sleep(2 * time.Millisecond) // zaman damgaları kesin artsın
		}
	}

	items := svc.List()
	require.Len(t, items, 3)
	assert.Equal(t, "son", items[0].Title)
	assert.Equal(t, "orta", items[1].Title)
	assert.Equal(t, "ilk", items[2].Title)

	// En yeni başta: zaman damgaları azalan sırada
	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].CreatedAt, items[i].CreatedAt)
	}
}

func TestSaveRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	svc := NewService(ctx, st)
	saved, err := svc.Save(ctx, model.KindImage, "data:image/png;base64,AAAA", "Stüdyo Çekimi")
	require.NoError(t, err)

	// Taze bir servis aynı depodan aynı kaydı okumalı
	reloaded := NewService(ctx, st)
	items := reloaded.List()
	require.Len(t, items, 1)

	assert.Equal(t, saved.ID, items[0].ID)
	assert.Equal(t, model.KindImage, items[0].Kind)
	assert.Equal(t, "data:image/png;base64,AAAA", items[0].Content)
	assert.Equal(t, "Stüdyo Çekimi", items[0].Title)
	assert.Equal(t, saved.CreatedAt, items[0].CreatedAt)
}

func TestSaveGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, store.NewMemoryStore())

	a, err := svc.Save(ctx, model.KindText, "a", "a")
	require.NoError(t, err)
	b, err := svc.Save(ctx, model.KindText, "b", "b")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(ctx, st)

	keep, err := svc.Save(ctx, model.KindText, "kalacak", "kalacak")
	require.NoError(t, err)
	drop, err := svc.Save(ctx, model.KindText, "silinecek", "silinecek")
	require.NoError(t, err)

	found, err := svc.Delete(ctx, drop.ID)
	require.NoError(t, err)
	assert.True(t, found)

	items := svc.List()
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	// Silme kalıcıdır
	reloaded := NewService(ctx, st)
	assert.Len(t, reloaded.List(), 1)

	found, err = svc.Delete(ctx, "yok-boyle-bir-id")
	require.NoError(t, err)
	assert.False(t, found)
}

// failingStore - yazımları reddeden depo; okuma boş döner
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, nil
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("bağlantı koptu")
}

func (failingStore) Remove(ctx context.Context, key string) error {
	return errors.New("bağlantı koptu")
}

func TestSavePersistFailureKeepsItemInMemory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, failingStore{})

	item, err := svc.Save(ctx, model.KindText, "yine de kalır", "başlık")
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorage, apperr.KindOf(err))
	assert.Equal(t, "Arşiv kaydedilemedi.", apperr.MessageOf(err))

	// Depo yazamasa da kayıt bellekte durur
	items := svc.List()
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestCorruptArchivePayloadStartsEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	require.NoError(t, st.Set(ctx, store.KeyArchive, "{bozuk json"))

	svc := NewService(ctx, st)
	assert.Empty(t, svc.List())
}
