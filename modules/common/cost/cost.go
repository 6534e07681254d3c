// Package cost üretim maliyeti tahmini. Yan etkisiz saf hesap:
// metin istekleri token başına, görseller adet başına ücretlendirilir.
package cost

import (
	"fmt"

	"can-kuruyemis-server/modules/common/model"
)

// Gemini Flash kullandıkça-öde tahminleri
const (
	priceTextInputUSDPerMTok  = 0.10
	priceTextOutputUSDPerMTok = 0.40
	priceImageUSD             = 0.040 // yaklaşık standart görsel üretim maliyeti
	usdToTRY                  = 36.5  // yaklaşık kur
	displayFloor              = 0.01
)

// Breakdown - tek bir üretimin tahmini maliyeti
type Breakdown struct {
	USD       float64
	TRY       float64
	Estimated bool // görsel maliyeti token'dan değil sabit tarifeden gelir
}

// Display - JSON yanıtlarda taşınan biçimlenmiş hali
type Display struct {
	USD       string `json:"usd"`
	TRY       string `json:"try"`
	Estimated bool   `json:"estimated"`
}

// Estimate - token sayıları ve istek türünden maliyet hesapla.
// Görsellerde token sayıları yanıltıcı olabileceği için yok sayılır.
func Estimate(kind model.ResultKind, usage *model.TokenUsage) Breakdown {
	var usd float64
	estimated := false

	if kind == model.KindImage {
		usd = priceImageUSD
		estimated = true
	} else if usage != nil {
		inputCost := float64(usage.PromptTokens) / 1_000_000 * priceTextInputUSDPerMTok
		outputCost := float64(usage.ResponseTokens) / 1_000_000 * priceTextOutputUSDPerMTok
		usd = inputCost + outputCost
	}

	return Breakdown{
		USD:       usd,
		TRY:       usd * usdToTRY,
		Estimated: estimated,
	}
}

// Format - çok küçük tutarlar "0" yerine "< 0.01" olarak gösterilir
func Format(amount float64, currency string) string {
	if amount == 0 {
		return "0"
	}
	if amount < displayFloor {
		return fmt.Sprintf("< %.2f %s", displayFloor, currency)
	}
	return fmt.Sprintf("%.4f %s", amount, currency)
}

// Display - iki para biriminde biçimlenmiş görünüm
func (b Breakdown) Display() Display {
	return Display{
		USD:       Format(b.USD, "USD"),
		TRY:       Format(b.TRY, "TRY"),
		Estimated: b.Estimated,
	}
}
