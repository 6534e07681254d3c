package logo

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/store"
)

// maxLogoChars - data URI olarak saklanan logonun üst sınırı.
// Sınırı aşan yükleme, mevcut logoya dokunmadan reddedilir.
const maxLogoChars = 3_000_000

// Service - marka logosunun tekil saklama alanı
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

// Upload - logoyu doğrulayıp kaydeder. Doğrulama kayıttan ÖNCE yapılır;
// geçersiz girdi önceki logoyu silmez.
func (s *Service) Upload(ctx context.Context, dataURI string) error {
	if dataURI == "" {
		return apperr.New(apperr.KindValidation, "Logo verisi boş olamaz.")
	}
	if !strings.HasPrefix(dataURI, "data:image/") {
		return apperr.New(apperr.KindValidation, "Logo bir görsel data URI olmalı.")
	}
	if len(dataURI) > maxLogoChars {
		return apperr.New(apperr.KindValidation, "Logo dosyası çok büyük. Lütfen daha küçük bir görsel seçin.")
	}

	if err := s.store.Set(ctx, store.KeyLogo, dataURI); err != nil {
		return apperr.Wrap(apperr.KindStorage, "Logo kaydedilemedi.", err)
	}

	log.Infof("🏷️  Logo updated (%d chars)", len(dataURI))
	return nil
}

// Get - kayıtlı logo; yoksa boş string ve false
func (s *Service) Get(ctx context.Context) (string, bool, error) {
	value, found, err := s.store.Get(ctx, store.KeyLogo)
	if err != nil {
		return "", false, apperr.Wrap(apperr.KindStorage, "Logo okunamadı.", err)
	}
	return value, found, nil
}

// Remove - kayıtlı logoyu siler
func (s *Service) Remove(ctx context.Context) error {
	if err := s.store.Remove(ctx, store.KeyLogo); err != nil {
		return apperr.Wrap(apperr.KindStorage, "Logo silinemedi.", err)
	}

	log.Info("🏷️  Logo removed")
	return nil
}
