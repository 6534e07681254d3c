// Package gemini genai istemcisi ve üretim servislerinin bağımlılık arayüzleri
package gemini

import (
	"context"
	"iter"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/config"
)

// ContentGenerator - tek atımlık üretim çağrısı; *genai.Models bu arayüzü sağlar
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// StreamGenerator - akışlı üretim çağrısı; *genai.Models bu arayüzü sağlar
type StreamGenerator interface {
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// NewClient - genai istemcisi oluştur
func NewClient(ctx context.Context, cfg *config.Config) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	log.Info("✅ Genai client initialized")
	return client, nil
}
