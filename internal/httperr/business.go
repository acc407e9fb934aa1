package httperr

import "errors"

// BusinessError is a rule violation the user can fix. Message is safe to
// show to the user.
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

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessMessage returns the user-facing message of a BusinessError.
func BusinessMessage(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message, true
	}
	return "", false
}
