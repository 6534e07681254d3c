package drive

import (
	"bytes"
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"can-kuruyemis-server/modules/common/apperr"
)

// UploadedFile - Drive'a yüklenen dosyanın kimliği ve paylaşım linki
type UploadedFile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	WebLink string `json:"webLink,omitempty"`
}

// Service - üretilen görselleri Google Drive klasörüne yükler.
// Kimlik dosyası verilmemişse servis devre dışıdır.
type Service struct {
	files    *drive.FilesService
	folderID string
}

// NewService - servis hesabı kimliğiyle Drive istemcisi kurar.
// credentialsFile boşsa devre dışı bir servis döner.
func NewService(ctx context.Context, credentialsFile, folderID string) (*Service, error) {
	if credentialsFile == "" {
		log.Info("📁 Drive upload disabled (no credentials configured)")
		return &Service{folderID: folderID}, nil
	}

	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "Drive istemcisi başlatılamadı.", err)
	}

	log.Info("📁 Drive upload enabled")
	return &Service{files: svc.Files, folderID: folderID}, nil
}

// Enabled - yükleme yapılandırılmış mı
func (s *Service) Enabled() bool {
	return s.files != nil
}

// Upload - görseli Drive klasörüne yükler
func (s *Service) Upload(ctx context.Context, name, mimeType string, data []byte) (UploadedFile, error) {
	if !s.Enabled() {
		return UploadedFile{}, apperr.New(apperr.KindValidation, "Drive entegrasyonu yapılandırılmamış.")
	}
	if name == "" {
		return UploadedFile{}, apperr.New(apperr.KindValidation, "Dosya adı gerekli.")
	}
	if len(data) == 0 {
		return UploadedFile{}, apperr.New(apperr.KindValidation, "Yüklenecek görsel verisi boş.")
	}

	meta := &drive.File{Name: name}
	if s.folderID != "" {
		meta.Parents = []string{s.folderID}
	}

	created, err := s.files.Create(meta).
		Context(ctx).
		Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).
		Fields("id", "name", "webViewLink").
		Do()
	if err != nil {
		return UploadedFile{}, apperr.Wrap(apperr.KindTransport, "Drive'a yükleme başarısız oldu.", err)
	}

	log.Infof("📁 Uploaded to Drive: %s (%s)", created.Name, created.Id)
	return UploadedFile{ID: created.Id, Name: created.Name, WebLink: created.WebViewLink}, nil
}
