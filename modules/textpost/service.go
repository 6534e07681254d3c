package textpost

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/brand"
	"can-kuruyemis-server/modules/common/flight"
	gemini "can-kuruyemis-server/modules/common/gemini"
	"can-kuruyemis-server/modules/common/model"
)

const textTemperature = 0.8

// Service - sosyal medya gönderi metni üretimi
type Service struct {
	gen     gemini.ContentGenerator
	model   string
	tracker *flight.Tracker
}

func NewService(gen gemini.ContentGenerator, modelName string) *Service {
	return &Service{
		gen:     gen,
		model:   modelName,
		tracker: flight.NewTracker(),
	}
}

// Tracker - servis uçuş durumu
func (s *Service) Tracker() *flight.Tracker { return s.tracker }

// Submit - gönderi metni üret. Metin ve görsel birlikte boşsa ağa
// çıkmadan senkron reddedilir; devam eden istek varsa Busy döner.
func (s *Service) Submit(ctx context.Context, req Request) (*model.GenerationResult, error) {
	if req.Text == "" && req.Image.IsEmpty() {
		return nil, apperr.New(apperr.KindValidation, "Metin veya görsel girişi gerekli.")
	}

	if !s.tracker.Begin() {
		return nil, apperr.New(apperr.KindBusy, "Devam eden bir üretim var, lütfen bekleyin.")
	}

	result, err := s.generate(ctx, req)
	if err != nil {
		s.tracker.Fail(apperr.MessageOf(err))
		return nil, err
	}

	s.tracker.Succeed()
	return result, nil
}

func (s *Service) generate(ctx context.Context, req Request) (*model.GenerationResult, error) {
	parts, err := BuildPrompt(req)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Görsel okunamadı.", err)
	}

	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: brand.SystemInstruction}}},
		Temperature:       genai.Ptr(float32(textTemperature)),
		ThinkingConfig:    &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(0))},
	}

	resp, err := gemini.GenerateWithRetry(ctx, s.gen, s.model, contents, config)
	if err != nil {
		log.WithError(err).Error("❌ Text generation failed")
		return nil, apperr.Wrap(apperr.KindTransport, "Metin üretilemedi.", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, apperr.New(apperr.KindEmptyResult, "İçerik üretilemedi.")
	}

	return &model.GenerationResult{
		Kind:    model.KindText,
		Content: text,
		Usage:   model.UsageFrom(resp),
	}, nil
}
