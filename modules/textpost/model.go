package textpost

import (
	"can-kuruyemis-server/modules/common/cost"
	"can-kuruyemis-server/modules/common/model"
)

// Tone - metin üretimine uygulanan yazım stili
type Tone string

const (
	ToneFriendly       Tone = "friendly"
	ToneFunny          Tone = "funny"
	ToneInformative    Tone = "informative"
	ToneProductFocused Tone = "product_focused"
	ToneSale           Tone = "sale"
)

// toneDescriptions - ton → stil açıklaması tablosu. Tanımsız anahtarlar
// friendly'ye düşer; arama her zaman boş olmayan bir açıklama döndürür.
var toneDescriptions = map[Tone]string{
	ToneFriendly:       "Samimi ve sıcak: mahallenin güler yüzlü esnafı gibi, \"bizden\" bir dille yaz.",
	ToneFunny:          "Esprili ve eğlenceli: hafif mizah ve kelime oyunları kullan, abartıya kaçmadan gülümset.",
	ToneInformative:    "Bilgilendirici: ürünün faydasını, tazeliğini ve saklama önerilerini kısa ve net anlat.",
	ToneProductFocused: "Ürün odaklı: tek bir ürünü öne çıkar, çıtırlığını ve kavrulma kokusunu betimle.",
	ToneSale:           "Kampanya dili: dürüst ve davetkar bir fırsat duyurusu yap, aciliyet hissi ver ama asla fiyat uydurma.",
}

// ResolveTone - toplam arama: bilinmeyen anahtar friendly açıklamasını döndürür
func ResolveTone(tone Tone) string {
	if desc, ok := toneDescriptions[tone]; ok {
		return desc
	}
	return toneDescriptions[ToneFriendly]
}

// Request - metin üretim isteği
type Request struct {
	Text  string            `json:"text"`
	Image *model.ImageInput `json:"image,omitempty"`
	Tone  Tone              `json:"tone,omitempty"`
}

// Response - metin üretim yanıt zarfı
type Response struct {
	Success      bool                    `json:"success"`
	Result       *model.GenerationResult `json:"result,omitempty"`
	Cost         *cost.Display           `json:"cost,omitempty"`
	AdPromptHint string                  `json:"adPromptHint,omitempty"`
	ErrorCode    string                  `json:"errorCode,omitempty"`
	ErrorMessage string                  `json:"errorMessage,omitempty"`
}

// StatusResponse - uçuş durumu yanıtı
type StatusResponse struct {
	State        string `json:"state"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
