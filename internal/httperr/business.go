package httperr

import "errors"

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// ErrValidation carrega a primeira mensagem de validação extraída
// do corpo de erro do backend.
func ErrValidation(message string) error {
	return BusinessError{Code: "validation_error", Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessMessage(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Message
	}
	return ""
}
