package httperr

import "errors"

// BusinessError is a rule violation identified by a stable code
// ("time_conflict", "invalid_state", ...). Handlers map codes to HTTP
// statuses; everything below the handler layer only compares codes.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err carries the given business code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
