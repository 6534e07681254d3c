package visual

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/flight"
	gemini "can-kuruyemis-server/modules/common/gemini"
	"can-kuruyemis-server/modules/common/imgutil"
	"can-kuruyemis-server/modules/common/model"
	"can-kuruyemis-server/modules/common/store"
)

const (
	webpQuality = 80
	// API görsel yerine açıklama metni döndürdüğünde hata detayına alınan üst sınır
	explanationLimit = 200
)

// logoMissingWarning - includeLogo istendi ama kayıtlı logo yok
const logoMissingWarning = "Dikkat: Logo henüz yüklenmemiş! Logonuzu yükleyip tekrar deneyebilirsiniz."

// Service - reklam / fotoğraf iyileştirme görseli üretimi
type Service struct {
	gen     gemini.ContentGenerator
	store   store.Store
	model   string
	tracker *flight.Tracker
}

func NewService(gen gemini.ContentGenerator, st store.Store, modelName string) *Service {
	return &Service{
		gen:     gen,
		store:   st,
		model:   modelName,
		tracker: flight.NewTracker(),
	}
}

// Tracker - servis uçuş durumu
func (s *Service) Tracker() *flight.Tracker { return s.tracker }

// Submit - görsel üret. ENHANCE referans görsel ister; ADVERTISEMENT metin
// veya görselden birini ister (görsel tek başına yeterlidir). Logo istenmiş
// ama yüklenmemişse üretim sürer, warning döner.
func (s *Service) Submit(ctx context.Context, req Request) (result *model.GenerationResult, warning string, err error) {
	req.normalize()

	if err := validate(req); err != nil {
		return nil, "", err
	}

	logoDataURI := ""
	if req.IncludeLogo {
		val, found, storeErr := s.store.Get(ctx, store.KeyLogo)
		if storeErr != nil {
			log.WithError(storeErr).Warn("⚠️  Logo lookup failed, continuing without logo")
		}
		if found {
			logoDataURI = val
		} else {
			warning = logoMissingWarning
		}
	}

	if !s.tracker.Begin() {
		return nil, "", apperr.New(apperr.KindBusy, "Devam eden bir üretim var, lütfen bekleyin.")
	}

	result, err = s.generate(ctx, req, logoDataURI)
	if err != nil {
		s.tracker.Fail(apperr.MessageOf(err))
		return nil, "", err
	}

	s.tracker.Succeed()
	return result, warning, nil
}

// validate - alt türe özgü ön koşullar; ağ çağrısından önce senkron kontrol
func validate(req Request) error {
	if !validAspectRatios[req.AspectRatio] {
		return apperr.New(apperr.KindValidation, "Geçersiz görsel formatı: "+req.AspectRatio)
	}

	switch req.VisualType {
	case TypeEnhance:
		if req.Image.IsEmpty() {
			return apperr.New(apperr.KindValidation, "Profesyonelleştirme modu için lütfen bir fotoğraf yükleyin.")
		}
	case TypeAdvertisement:
		if req.Text == "" && req.Image.IsEmpty() {
			return apperr.New(apperr.KindValidation, "Reklam görseli için metin veya fotoğraf gerekli.")
		}
	default:
		return apperr.New(apperr.KindValidation, "Geçersiz görsel üretim türü: "+string(req.VisualType))
	}
	return nil
}

func (s *Service) generate(ctx context.Context, req Request, logoDataURI string) (*model.GenerationResult, error) {
	parts, err := BuildPrompt(req, logoDataURI)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Görsel okunamadı.", err)
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	config := &genai.GenerateContentConfig{
		ImageConfig: &genai.ImageConfig{AspectRatio: req.AspectRatio},
	}

	resp, err := gemini.GenerateWithRetry(ctx, s.gen, s.model, contents, config)
	if err != nil {
		log.WithError(err).Error("❌ Visual generation failed")
		return nil, apperr.Wrap(apperr.KindTransport, "Görsel üretim hatası.", err)
	}

	blob, explanation := firstInlineImage(resp)
	if blob == nil {
		// Model görsel yerine açıklama döndürdüyse onu (kırpılmış) göster
		msg := "Görsel oluşturulamadı."
		if explanation != "" {
			msg = "Görsel oluşturulamadı: " + truncate(explanation, explanationLimit)
		}
		return nil, apperr.New(apperr.KindEmptyResult, msg)
	}

	content, err := s.encodeResult(blob, req.Format)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTransport, "Görsel dönüştürülemedi.", err)
	}

	return &model.GenerationResult{
		Kind:    model.KindImage,
		Content: content,
		Usage:   model.UsageFrom(resp),
	}, nil
}

// encodeResult - ilk inline görseli data URI'ye paketle; istenirse WebP'ye çevir
func (s *Service) encodeResult(blob *genai.Blob, format string) (string, error) {
	if format == "webp" && blob.MIMEType == "image/png" {
		webpData, err := imgutil.ConvertPNGToWebP(blob.Data, webpQuality)
		if err != nil {
			return "", err
		}
		return imgutil.ToDataURI(webpData, "image/webp"), nil
	}
	return imgutil.ToDataURI(blob.Data, blob.MIMEType), nil
}

// firstInlineImage - yanıttaki ilk inline görsel parçası; yoksa
// varsa açıklayıcı metni toplar
func firstInlineImage(resp *genai.GenerateContentResponse) (*genai.Blob, string) {
	explanation := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData, ""
			}
			if part.Text != "" && explanation == "" {
				explanation = part.Text
			}
		}
	}
	return nil, explanation
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
