package textpost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/flight"
	"can-kuruyemis-server/modules/common/model"
)

type mockGenerator struct {
	calls        int
	resp         *genai.GenerateContentResponse
	err          error
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
}

func (m *mockGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.calls++
	m.lastContents = contents
	m.lastConfig = config
	return m.resp, m.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     120,
			CandidatesTokenCount: 340,
			TotalTokenCount:      460,
		},
	}
}

func TestSubmitRejectsMissingInputWithoutNetworkCall(t *testing.T) {
	gen := &mockGenerator{resp: textResponse("asla")}
	svc := NewService(gen, "gemini-3-flash-preview")

	_, err := svc.Submit(context.Background(), Request{})

	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Zero(t, gen.calls, "validation failures must not reach the API")

	// Senkron red, Loading'e hiç girmez
	state, _ := svc.Tracker().Snapshot()
	assert.Equal(t, flight.StateIdle, state)
}

func TestSubmitSuccessNormalizesResult(t *testing.T) {
	gen := &mockGenerator{resp: textResponse("### 📱 Instagram Gönderi Metni:\nTaptaze fıstıklar geldi!")}
	svc := NewService(gen, "gemini-3-flash-preview")

	result, err := svc.Submit(context.Background(), Request{Text: "fıstık gönderisi", Tone: ToneFriendly})
	require.NoError(t, err)

	assert.Equal(t, model.KindText, result.Kind)
	assert.Contains(t, result.Content, "Taptaze fıstıklar")
	require.NotNil(t, result.Usage)
	assert.Equal(t, int32(120), result.Usage.PromptTokens)
	assert.Equal(t, int32(340), result.Usage.ResponseTokens)
	assert.Equal(t, int32(460), result.Usage.TotalTokens)

	state, _ := svc.Tracker().Snapshot()
	assert.Equal(t, flight.StateSuccess, state)

	// Sabit yaratıcılık parametresi ve sistem talimatı istekle gider
	require.NotNil(t, gen.lastConfig)
	require.NotNil(t, gen.lastConfig.Temperature)
	assert.InDelta(t, 0.8, float64(*gen.lastConfig.Temperature), 1e-6)
	require.NotNil(t, gen.lastConfig.SystemInstruction)
}

func TestSubmitMissingUsageIsTolerated(t *testing.T) {
	resp := textResponse("metin")
	resp.UsageMetadata = nil
	svc := NewService(&mockGenerator{resp: resp}, "m")

	result, err := svc.Submit(context.Background(), Request{Text: "x"})
	require.NoError(t, err)
	assert.Nil(t, result.Usage)
}

func TestSubmitAPIFailureIsTransport(t *testing.T) {
	gen := &mockGenerator{err: errors.New("connection reset")}
	svc := NewService(gen, "m")

	_, err := svc.Submit(context.Background(), Request{Text: "x"})

	assert.Equal(t, apperr.KindTransport, apperr.KindOf(err))
	assert.Equal(t, "Metin üretilemedi.", apperr.MessageOf(err))

	state, msg := svc.Tracker().Snapshot()
	assert.Equal(t, flight.StateError, state)
	assert.Equal(t, "Metin üretilemedi.", msg)
}

func TestSubmitEmptyResponseIsEmptyResult(t *testing.T) {
	gen := &mockGenerator{resp: &genai.GenerateContentResponse{}}
	svc := NewService(gen, "m")

	_, err := svc.Submit(context.Background(), Request{Text: "x"})

	assert.Equal(t, apperr.KindEmptyResult, apperr.KindOf(err))
	assert.Equal(t, "İçerik üretilemedi.", apperr.MessageOf(err))
}

func TestSubmitWhileLoadingIsRejected(t *testing.T) {
	svc := NewService(&mockGenerator{resp: textResponse("ok")}, "m")

	require.True(t, svc.Tracker().Begin()) // devam eden istek simülasyonu
	_, err := svc.Submit(context.Background(), Request{Text: "x"})
	assert.Equal(t, apperr.KindBusy, apperr.KindOf(err))
}
