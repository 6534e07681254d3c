package archive

import "can-kuruyemis-server/modules/common/model"

// SavedItem - arşive açıkça kaydedilmiş bir üretim; oluşturulduktan
// sonra değişmez
type SavedItem struct {
	ID        string           `json:"id"`
	Kind      model.ResultKind `json:"type"`
	Content   string           `json:"content"`
	Title     string           `json:"title"`
	CreatedAt int64            `json:"timestamp"` // Unix ms
}

// SaveRequest - kayıt isteği
type SaveRequest struct {
	Kind    model.ResultKind `json:"kind"`
	Content string           `json:"content"`
	Title   string           `json:"title"`
}

// ListResponse - arşiv listesi yanıtı
type ListResponse struct {
	Success bool        `json:"success"`
	Items   []SavedItem `json:"items"`
}

// MutationResponse - kayıt/silme yanıtı
type MutationResponse struct {
	Success      bool       `json:"success"`
	Item         *SavedItem `json:"item,omitempty"`
	Warning      string     `json:"warning,omitempty"`
	ErrorCode    string     `json:"errorCode,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
}
