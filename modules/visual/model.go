package visual

import (
	"can-kuruyemis-server/modules/common/cost"
	"can-kuruyemis-server/modules/common/model"
)

// VisualType - görsel üretim alt türü
type VisualType string

const (
	// TypeEnhance - mevcut fotoğrafı profesyonelleştir (referans görsel zorunlu)
	TypeEnhance VisualType = "ENHANCE"
	// TypeAdvertisement - yeni reklam/tanıtım görseli oluştur
	TypeAdvertisement VisualType = "ADVERTISEMENT"
)

// validAspectRatios - desteklenen görsel formatları
var validAspectRatios = map[string]bool{
	"1:1":  true,
	"16:9": true,
	"9:16": true,
	"4:3":  true,
	"3:4":  true,
}

const defaultAspectRatio = "1:1"

// Request - görsel üretim isteği
type Request struct {
	Text        string            `json:"text"`
	Image       *model.ImageInput `json:"image,omitempty"`
	VisualType  VisualType        `json:"visualType"`
	IncludeLogo bool              `json:"includeLogo"`
	AspectRatio string            `json:"aspectRatio,omitempty"`
	Format      string            `json:"format,omitempty"` // "png" (varsayılan) | "webp"
}

// normalize - boş alanlara açık varsayılanları uygula
func (r *Request) normalize() {
	if r.VisualType == "" {
		r.VisualType = TypeAdvertisement
	}
	if r.AspectRatio == "" {
		r.AspectRatio = defaultAspectRatio
	}
	if r.Format == "" {
		r.Format = "png"
	}
}

// Response - görsel üretim yanıt zarfı
type Response struct {
	Success      bool                    `json:"success"`
	Result       *model.GenerationResult `json:"result,omitempty"`
	Cost         *cost.Display           `json:"cost,omitempty"`
	Warning      string                  `json:"warning,omitempty"`
	ErrorCode    string                  `json:"errorCode,omitempty"`
	ErrorMessage string                  `json:"errorMessage,omitempty"`
}

// StatusResponse - uçuş durumu yanıtı
type StatusResponse struct {
	State        string `json:"state"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}
