package apperr

import (
	"errors"
	"fmt"
)

// Kind: класс ошибки ядра, по нему HTTP-слой выбирает статус
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindInvalidRange
	KindInvalidReference
	KindValidation
	KindInvalidState
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidRange:
		return "invalid_range"
	case KindInvalidReference:
		return "invalid_reference"
	case KindValidation:
		return "validation"
	case KindInvalidState:
		return "invalid_state"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Машиночитаемые коды
const (
	CodeNotFound              = "NOT_FOUND"
	CodeTierNotFound          = "PLATFORM_FEE_NOT_FOUND"
	CodeSpecialistNotFound    = "SPECIALIST_NOT_FOUND"
	CodeServiceNotFound       = "SERVICE_NOT_FOUND"
	CodeUserNotFound          = "USER_NOT_FOUND"
	CodeConflict              = "CONFLICT"
	CodeTierNameExists        = "TIER_NAME_EXISTS"
	CodeRangeOverlap          = "RANGE_OVERLAP"
	CodeSlugTaken             = "SLUG_TAKEN"
	CodeEmailExists           = "EMAIL_EXISTS"
	CodeServiceInUse          = "SERVICE_IN_USE"
	CodeInvalidRange          = "INVALID_RANGE"
	CodeInvalidServiceIDs     = "INVALID_SERVICE_IDS"
	CodeValidation            = "VALIDATION_ERROR"
	CodeAlreadyPublished      = "ALREADY_PUBLISHED"
	CodeFeeTiersNotConfigured = "FEE_TIERS_NOT_CONFIGURED"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeStorageUnavailable    = "STORAGE_UNAVAILABLE"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
)

// FieldError: ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error: ожидаемая, восстанавливаемая вызывающим ошибка ядра
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is с шаблонами
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NotFound(code, format string, args ...any) *Error {
	return New(KindNotFound, code, fmt.Sprintf(format, args...))
}

func Conflict(code, format string, args ...any) *Error {
	return New(KindConflict, code, fmt.Sprintf(format, args...))
}

func InvalidRange(format string, args ...any) *Error {
	return New(KindInvalidRange, CodeInvalidRange, fmt.Sprintf(format, args...))
}

func InvalidReference(code, format string, args ...any) *Error {
	return New(KindInvalidReference, code, fmt.Sprintf(format, args...))
}

func InvalidState(code, format string, args ...any) *Error {
	return New(KindInvalidState, code, fmt.Sprintf(format, args...))
}

func Unauthorized(message string) *Error {
	return New(KindUnauthorized, CodeUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(KindForbidden, CodeForbidden, message)
}

// Validation собирает ошибку из списка полей; сообщение берётся из первого
func Validation(fields ...FieldError) *Error {
	msg := "one or more fields failed validation"
	if len(fields) > 0 {
		msg = fmt.Sprintf("%s: %s", fields[0].Field, fields[0].Message)
		if len(fields) > 1 {
			msg = fmt.Sprintf("%s (and %d more errors)", msg, len(fields)-1)
		}
	}
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: msg, Fields: fields}
}

// ValidationMsg: ошибка валидации без привязки к полю
func ValidationMsg(format string, args ...any) *Error {
	return New(KindValidation, CodeValidation, fmt.Sprintf(format, args...))
}

// As достаёт *Error из цепочки
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is проверяет класс ошибки в цепочке
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// HasCode проверяет машиночитаемый код в цепочке
func HasCode(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
