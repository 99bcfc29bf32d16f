package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/maitriparekhcs2848/GearGuard/pkg/errors"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate makes the validator usable as echo.Validator; tag failures come
// back as 400s with the validator message.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusBadRequest, err.Error(), err)
	}
	return nil
}
