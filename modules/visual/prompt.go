package visual

import (
	"fmt"
	"strings"

	"google.golang.org/genai"

	"can-kuruyemis-server/modules/common/brand"
	"can-kuruyemis-server/modules/common/imgutil"
)

// letteringKeywords - kullanıcının görsel içinde yazı istediğini gösteren ifadeler
var letteringKeywords = []string{"yaz", "metin", "slogan", "text", "write"}

// requestsLettering - serbest metin görsel üzerinde yazı talep ediyor mu
func requestsLettering(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range letteringKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// BuildPrompt - görsel üretimi için çok parçalı istek gövdesi.
// Parça sırası sabittir: referans görsel → logo → tek metin parçası.
// Logo yalnızca ADVERTISEMENT + includeLogo + kayıtlı logo varken eklenir.
func BuildPrompt(req Request, logoDataURI string) ([]*genai.Part, error) {
	var parts []*genai.Part
	hasReference := !req.Image.IsEmpty()

	if hasReference {
		imagePart, err := req.Image.Part()
		if err != nil {
			return nil, err
		}
		parts = append(parts, imagePart)
	}

	hasLogo := false
	if req.IncludeLogo && req.VisualType == TypeAdvertisement && logoDataURI != "" {
		data, mimeType, err := imgutil.ParseDataURI(logoDataURI)
		if err != nil {
			return nil, fmt.Errorf("stored logo is not a valid data URI: %w", err)
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: data, MIMEType: mimeType},
		})
		hasLogo = true
	}

	var sb strings.Builder
	if req.VisualType == TypeEnhance {
		sb.WriteString("Professional enhancement of this food photo. Focus on nuts texture and warmth.")
		if req.Text != "" {
			sb.WriteString(" " + req.Text + ".")
		}
	} else {
		subject := req.Text
		if subject == "" {
			subject = "Mixed nuts arrangement"
		}
		fmt.Fprintf(&sb, "Stunning professional advertising photography for a nut shop: %s.", subject)

		if requestsLettering(req.Text) {
			sb.WriteString(" Render the requested lettering clearly, boldly and legibly using a professional font that fits the composition.")
		} else {
			sb.WriteString(" Do not include any text in the image.")
		}
		if hasReference {
			sb.WriteString(" Use the provided reference photo as the product source and keep the same product identity.")
		}
		if hasLogo {
			sb.WriteString(" Incorporate the provided brand logo naturally into the scene without distorting it.")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(brand.ImageStyleInstruction)

	parts = append(parts, &genai.Part{Text: sb.String()})
	return parts, nil
}
