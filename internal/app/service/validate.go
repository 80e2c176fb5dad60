package service

import (
	"fmt"
	"unicode/utf8"

	"marketplace/internal/app/apperr"
)

// fieldErrors копит ошибки полей и отдаёт одну ошибку Validation
type fieldErrors []apperr.FieldError

func (f *fieldErrors) add(field, format string, args ...any) {
	*f = append(*f, apperr.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (f *fieldErrors) length(field, value string, min, max int) {
	n := utf8.RuneCountInString(value)
	if n < min || n > max {
		f.add(field, "must be between %d and %d characters", min, max)
	}
}

// price: цена от 0.01 до MaxAmount
func (f *fieldErrors) price(field string, v float64) {
	if !validAmount(v, 0.01) {
		f.add(field, "must be between 0.01 and %.2f", MaxAmount)
	}
}

func (f *fieldErrors) minLength(field, value string, min int) {
	if utf8.RuneCountInString(value) < min {
		f.add(field, "must be at least %d characters", min)
	}
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperr.Validation(f...)
}
