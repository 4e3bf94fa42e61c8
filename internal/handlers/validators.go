package handlers

import (
	"sync"

	"github.com/SscSPs/currency_converter_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// currencyCode backs the `currency_code` binding tag.
func currencyCode(fl validator.FieldLevel) bool {
	_, err := domain.NormalizeCurrencyCode(fl.Field().String())
	return err == nil
}

// registerValidators installs the custom binding tags on gin's validator.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			_ = v.RegisterValidation("currency_code", currencyCode)
		}
	})
}
