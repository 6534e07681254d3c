package textpost

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"can-kuruyemis-server/modules/common/model"
)

func testImage() *model.ImageInput {
	return &model.ImageInput{
		Data:     base64.StdEncoding.EncodeToString([]byte("fake-jpeg")),
		MimeType: "image/jpeg",
	}
}

func TestBuildPromptTextOnly(t *testing.T) {
	parts, err := BuildPrompt(Request{Text: "Fıstık kampanyası duyur", Tone: ToneSale})
	require.NoError(t, err)
	require.Len(t, parts, 1)

	assert.Nil(t, parts[0].InlineData)
	assert.Contains(t, parts[0].Text, "Kullanıcının isteği: Fıstık kampanyası duyur")
	assert.Contains(t, parts[0].Text, "Yazım Stili (TONE): "+ResolveTone(ToneSale))
}

func TestBuildPromptImagePrecedesText(t *testing.T) {
	parts, err := BuildPrompt(Request{Text: "tezgah fotoğrafı", Image: testImage()})
	require.NoError(t, err)
	require.Len(t, parts, 2)

	// Görsel parça önce, tek metin parçası her zaman son
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MIMEType)
	assert.Empty(t, parts[0].Text)
	assert.Nil(t, parts[1].InlineData)
	assert.NotEmpty(t, parts[1].Text)
}

func TestBuildPromptEmptyTextUsesPlaceholder(t *testing.T) {
	parts, err := BuildPrompt(Request{Image: testImage()})
	require.NoError(t, err)

	textPart := parts[len(parts)-1]
	assert.Contains(t, textPart.Text, defaultPromptText)
}

func TestBuildPromptRejectsBrokenImage(t *testing.T) {
	_, err := BuildPrompt(Request{Image: &model.ImageInput{Data: "%%%bozuk%%%"}})
	assert.Error(t, err)
}

func TestResolveToneIsTotal(t *testing.T) {
	for _, tone := range []Tone{ToneFriendly, ToneFunny, ToneInformative, ToneProductFocused, ToneSale} {
		desc := ResolveTone(tone)
		if strings.TrimSpace(desc) == "" {
			t.Errorf("tone %q resolved to an empty description", tone)
		}
	}

	// Bilinmeyen anahtar friendly açıklamasına düşer
	assert.Equal(t, ResolveTone(ToneFriendly), ResolveTone(Tone("sarcastic")))
	assert.Equal(t, ResolveTone(ToneFriendly), ResolveTone(""))
}
