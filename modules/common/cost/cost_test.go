package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"can-kuruyemis-server/modules/common/model"
)

func TestEstimateText(t *testing.T) {
	usage := &model.TokenUsage{PromptTokens: 1_000_000, ResponseTokens: 1_000_000, TotalTokens: 2_000_000}
	b := Estimate(model.KindText, usage)

	assert.InDelta(t, 0.50, b.USD, 1e-9) // 0.10 girdi + 0.40 çıktı
	assert.InDelta(t, 0.50*36.5, b.TRY, 1e-6)
	assert.False(t, b.Estimated)
}

func TestEstimateTextMonotonic(t *testing.T) {
	small := Estimate(model.KindText, &model.TokenUsage{PromptTokens: 500, ResponseTokens: 700})
	doubled := Estimate(model.KindText, &model.TokenUsage{PromptTokens: 1000, ResponseTokens: 1400})
	assert.GreaterOrEqual(t, doubled.USD, small.USD)
}

func TestEstimateTextWithoutUsage(t *testing.T) {
	b := Estimate(model.KindText, nil)
	assert.Zero(t, b.USD)
	assert.Zero(t, b.TRY)
}

func TestEstimateImageFlatRate(t *testing.T) {
	// Token sayılarından bağımsız sabit tarife
	withTokens := Estimate(model.KindImage, &model.TokenUsage{PromptTokens: 9_000_000, ResponseTokens: 9_000_000})
	withoutTokens := Estimate(model.KindImage, nil)

	assert.Equal(t, withTokens.USD, withoutTokens.USD)
	assert.InDelta(t, 0.040, withTokens.USD, 1e-9)
	assert.True(t, withTokens.Estimated)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"zero", 0, "TRY", "0"},
		{"below display floor", 0.004, "USD", "< 0.01 USD"},
		{"regular amount", 1.4621, "TRY", "1.4621 TRY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.currency))
		})
	}
}
