// Package model modüller arası paylaşılan üretim sonucu tipleri
package model

import (
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/imgutil"
)

type ResultKind string

const (
	KindText  ResultKind = "TEXT"
	KindImage ResultKind = "IMAGE"
)

// TokenUsage - API'nin raporladığı token sayıları
type TokenUsage struct {
	PromptTokens   int32 `json:"promptTokens"`
	ResponseTokens int32 `json:"responseTokens"`
	TotalTokens    int32 `json:"totalTokens"`
}

// GenerationResult - normalize edilmiş üretim çıktısı; üretildikten sonra değişmez
type GenerationResult struct {
	Kind    ResultKind  `json:"kind"`
	Content string      `json:"content"` // düz metin veya data URI
	Usage   *TokenUsage `json:"usage,omitempty"`
}

// UsageFrom - genai yanıt metadatasını TokenUsage'a çevir; yoksa nil
func UsageFrom(resp *genai.GenerateContentResponse) *TokenUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return nil
	}
	return &TokenUsage{
		PromptTokens:   resp.UsageMetadata.PromptTokenCount,
		ResponseTokens: resp.UsageMetadata.CandidatesTokenCount,
		TotalTokens:    resp.UsageMetadata.TotalTokenCount,
	}
}

// ImageInput - istekle gelen referans görsel; Data ham base64 ya da
// tam bir data URI olabilir
type ImageInput struct {
	Data     string `json:"data"`
	MimeType string `json:"mimeType,omitempty"`
}

// IsEmpty - görsel girdisi yok sayılır mı
func (i *ImageInput) IsEmpty() bool {
	return i == nil || i.Data == ""
}

// Part - girdiyi genai inline-data parçasına çevir
func (i *ImageInput) Part() (*genai.Part, error) {
	data, mimeType, err := imgutil.DecodeImageInput(i.Data, i.MimeType)
	if err != nil {
		return nil, err
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			Data:     data,
			MIMEType: mimeType,
		},
	}, nil
}
