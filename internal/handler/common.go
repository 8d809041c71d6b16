package handler

import (
	"net/http"

	"mathew.com/nurserydirectory/pkg/apperror"
	"mathew.com/nurserydirectory/pkg/validator"
)

// bindError turns a Gin binding failure into a 400 with the validation
// messages as the body.
func bindError(err error) error {
	return apperror.New(http.StatusBadRequest, validator.FormatValidationError(err), apperror.ErrBadRequest)
}
