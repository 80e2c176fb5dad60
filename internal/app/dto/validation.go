package dto

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"marketplace/internal/app/ds"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators подключает к валидатору gin имена полей из json-тегов
// и правило tier_name. Повторный вызов ничего не делает
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			if name == "-" {
				return ""
			}
			return name
		})

		registerErr = v.RegisterValidation("tier_name", func(fl validator.FieldLevel) bool {
			return ds.TierName(fl.Field().String()).IsValid()
		})
	})
	return registerErr
}
