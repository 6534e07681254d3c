// Package apperr taşıyıcı hata türleri: her hata bir Kind etiketi ve
// kullanıcıya gösterilecek Türkçe bir mesaj taşır. Sunum katmanı yalnızca
// Kind üzerinden dallanır.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation        Kind = "VALIDATION"
	KindBusy              Kind = "BUSY"
	KindTransport         Kind = "TRANSPORT"
	KindEmptyResult       Kind = "EMPTY_RESULT"
	KindStreamInterrupted Kind = "STREAM_INTERRUPTED"
	KindStorage           Kind = "STORAGE"
)

type Error struct {
	Kind    Kind
	Message string // kullanıcıya gösterilecek mesaj
	Err     error  // alttaki teknik hata (opsiyonel)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf - hatanın etiketi; etiketsiz hatalar Transport sayılır
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindTransport
}

// MessageOf - kullanıcıya gösterilecek mesaj
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Bilinmeyen bir hata oluştu."
}

// HTTPStatus - Kind → HTTP durum kodu eşlemesi
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindBusy:
		return http.StatusConflict
	case KindEmptyResult:
		return http.StatusUnprocessableEntity
	case KindStorage:
		return http.StatusInsufficientStorage
	default:
		return http.StatusBadGateway
	}
}
