package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const (
	maxAttempts = 3
	retryPause  = 2 * time.Second
)

// GenerateWithRetry - 429 görünce kısa bir beklemeyle aynı çağrıyı yineler.
// Diğer tüm hatalar ilk denemede döner.
func GenerateWithRetry(
	ctx context.Context,
	gen ContentGenerator,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			log.Infof("🔄 [Gemini Retry] Attempt %d/%d for model %s", attempt, maxAttempts, model)
		}

		result, err := gen.GenerateContent(ctx, model, contents, config)
		if err == nil {
			return result, nil
		}

		lastErr = err
		if !isRateLimitError(err) {
			return nil, err
		}

		log.Warnf("⚠️  [Gemini Retry] Rate limit (429) on attempt %d/%d", attempt, maxAttempts)
		if attempt < maxAttempts {
			select {
			case <-time.After(retryPause):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("all %d attempts exhausted, last error: %w", maxAttempts, lastErr)
}

// isRateLimitError - Gemini API 429 hata kalıpları
func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
