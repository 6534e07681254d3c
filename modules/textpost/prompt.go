package textpost

import (
	"fmt"

	"google.golang.org/genai"
)

// defaultPromptText - kullanıcı serbest metin vermediğinde kullanılan istek
const defaultPromptText = "Can Kuruyemiş için genel bir paylaşım."

// BuildPrompt - metin üretimi için çok parçalı istek gövdesi.
// Referans görsel varsa ilk parça odur; metin parçası her zaman tektir
// ve her zaman sondadır.
func BuildPrompt(req Request) ([]*genai.Part, error) {
	var parts []*genai.Part

	if !req.Image.IsEmpty() {
		imagePart, err := req.Image.Part()
		if err != nil {
			return nil, err
		}
		parts = append(parts, imagePart)
	}

	promptText := req.Text
	if promptText == "" {
		promptText = defaultPromptText
	}

	parts = append(parts, &genai.Part{
		Text: fmt.Sprintf("Kullanıcının isteği: %s\n\nYazım Stili (TONE): %s",
			promptText, ResolveTone(req.Tone)),
	})

	return parts, nil
}
