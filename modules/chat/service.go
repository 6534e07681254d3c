package chat

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/brand"
	gemini "can-kuruyemis-server/modules/common/gemini"
)

// Service - esnaf asistanıyla akışlı sohbet
type Service struct {
	gen   gemini.StreamGenerator
	model string
}

func NewService(gen gemini.StreamGenerator, modelName string) *Service {
	return &Service{gen: gen, model: modelName}
}

// Stream - transkripti (son kullanıcı mesajı dahil) gönderir ve her parça
// için onChunk'ı sırayla, senkron çağırır. Boş parçalar atlanır. Akış
// ortasında kopma olursa o ana kadar teslim edilenler korunur, kalan için
// StreamInterrupted döner. Context iptali parçalar arasında denetlenir ve
// alttaki ağ çağrısını da serbest bırakır.
func (s *Service) Stream(ctx context.Context, history []Message, onChunk func(string)) (string, error) {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		if role != RoleModel {
			role = RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Text}},
		})
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{
			{Text: brand.SystemInstruction + "\n\n" + brand.ChatPersonaSuffix},
		}},
	}

	var full string
	for resp, err := range s.gen.GenerateContentStream(ctx, s.model, contents, config) {
		if err != nil {
			log.WithError(err).Warn("⚠️  Chat stream interrupted")
			return full, apperr.Wrap(apperr.KindStreamInterrupted, "Sohbet akışı kesildi.", err)
		}
		if ctx.Err() != nil {
			return full, apperr.Wrap(apperr.KindStreamInterrupted, "Sohbet akışı iptal edildi.", ctx.Err())
		}

		chunk := resp.Text()
		if chunk == "" {
			continue
		}
		full += chunk
		onChunk(chunk)
	}

	if full == "" {
		return "", apperr.New(apperr.KindEmptyResult, "İçerik üretilemedi.")
	}
	return full, nil
}
