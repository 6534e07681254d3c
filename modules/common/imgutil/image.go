// Package imgutil data URI çözümleme ve görsel format dönüşümleri
package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	log "github.com/sirupsen/logrus"
)

const defaultMimeType = "image/png"

// ParseDataURI - "data:image/png;base64,...." dizisini çöz
func ParseDataURI(uri string) (data []byte, mimeType string, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return nil, "", fmt.Errorf("not a data URI")
	}

	head, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}

	mimeType = defaultMimeType
	meta := strings.TrimPrefix(head, "data:")
	if mime, _, found := strings.Cut(meta, ";"); found && mime != "" {
		mimeType = mime
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	return data, mimeType, nil
}

// DecodeImageInput - ham base64 veya data URI girdisini byte'lara çevir.
// mimeType boşsa data URI'den, o da yoksa image/png varsayımından gelir.
func DecodeImageInput(input, mimeType string) ([]byte, string, error) {
	if strings.HasPrefix(input, "data:") {
		return ParseDataURI(input)
	}
	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 image: %w", err)
	}
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return data, mimeType, nil
}

// ToDataURI - byte'ları data URI'ye paketle
func ToDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// ConvertPNGToWebP - PNG binarisini WebP'ye çevir
func ConvertPNGToWebP(pngData []byte, quality float32) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode PNG: %w", err)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var webpBuffer bytes.Buffer
	if err := webp.Encode(&webpBuffer, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	webpData := webpBuffer.Bytes()
	log.Infof("✅ PNG converted to WebP: %d bytes → %d bytes (%.1f%% reduction)",
		len(pngData), len(webpData),
		float64(len(pngData)-len(webpData))/float64(len(pngData))*100)

	return webpData, nil
}
