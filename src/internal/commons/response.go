package commons

import "errors"

// Response is the outcome of a service operation. A rejected operation carries
// Success=false and the reasons in Errors.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}

// RejectedResponse reports err by its innermost cause, so a wrapped sentinel shows
// its own text rather than the wrapping detail.
func RejectedResponse[T any](message string, err error) Response[T] {
	return ErrorResponse[T](message, rootCause(err).Error())
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
