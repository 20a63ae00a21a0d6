package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	roothelpers "github.com/condominios-online/condominios_mid/helpers"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator retorna el validador compartido; los errores usan el nombre JSON del campo.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct valida v y traduce las fallas a un AppError 400 legible.
func ValidateStruct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return roothelpers.NewAppError(http.StatusBadRequest, "payload inválido", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return roothelpers.NewAppError(http.StatusBadRequest, strings.Join(msgs, "; "), err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", fe.Field())
	case "oneof":
		return fmt.Sprintf("el campo %s debe ser uno de: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("el campo %s debe ser un correo válido", fe.Field())
	case "gte":
		return fmt.Sprintf("el campo %s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("el campo %s no es válido (%s)", fe.Field(), fe.Tag())
	}
}
