package apperr

import "github.com/gofiber/fiber/v2"

// Kind - API'ye sabit hata türü olarak yansıyan hata sınıfları.
// İstemciler bu değerlere göre dallanabilir, mesajlar sadece insan içindir.
type Kind string

const (
	KindInvalidToken      Kind = "invalid_token"      // QR kodu yok / pasif / süresi dolmuş
	KindInvalidTransition Kind = "invalid_transition" // Mevcut durumda geçersiz mesai aksiyonu
	KindDuplicate         Kind = "duplicate"          // Unique constraint ihlali (ör: çift clock_in yarışı)
	KindNotFound          Kind = "not_found"
	KindBadRequest        Kind = "bad_request"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func InvalidToken(message string) *Error      { return New(KindInvalidToken, message) }
func InvalidTransition(message string) *Error { return New(KindInvalidTransition, message) }
func Duplicate(message string) *Error         { return New(KindDuplicate, message) }
func NotFound(message string) *Error          { return New(KindNotFound, message) }
func BadRequest(message string) *Error        { return New(KindBadRequest, message) }

// HTTPStatus - Hata türünün HTTP karşılığı. main.go'daki merkezi
// ErrorHandler tarafından kullanılır.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidToken:
		return fiber.StatusUnauthorized
	case KindInvalidTransition:
		return fiber.StatusConflict
	case KindDuplicate:
		return fiber.StatusConflict
	case KindNotFound:
		return fiber.StatusNotFound
	case KindBadRequest:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
