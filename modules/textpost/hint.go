package textpost

import "strings"

const (
	adHintPrefix   = "Analize dayalı profesyonel reklam: "
	adHintMinLine  = 20
	adHintMaxRunes = 150
	adHintFallback = 100
)

// AdPromptHint - üretilen metinden görsel reklam için başlangıç istemi türetir.
// Yirmi karakterden uzun ilk satır tohum olur; yoksa metnin başı kullanılır.
func AdPromptHint(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	var hint string
	for _, line := range strings.Split(text, "\n") {
		if len([]rune(line)) > adHintMinLine {
			hint = line
			break
		}
	}
	if hint == "" {
		hint = truncateRunes(text, adHintFallback)
	}

	return adHintPrefix + truncateRunes(hint, adHintMaxRunes) + "..."
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
