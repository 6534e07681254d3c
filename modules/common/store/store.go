// Package store kalıcı anahtar/değer deposu. Tarayıcı localStorage
// sözleşmesinin sunucu karşılığı: string anahtar → string değer,
// eksik anahtar "ayarlanmamış" demektir, şema ve transaction yoktur.
package store

import "context"

// Dayanıklı girdilerin anahtarları. Depo tek yazarlıdır: her anahtara
// yalnızca sahibi olan modül yazar.
const (
	KeyAuth    = "canKuruyemisAuth"
	KeyLogo    = "canKuruyemisLogo"
	KeyArchive = "canKuruyemisArchive"
)

type Store interface {
	// Get - değeri döner; anahtar yoksa found=false, hata değil
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
