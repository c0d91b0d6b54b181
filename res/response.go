package res

import "net/http"

type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    map[string]interface{} `json:"body,omitempty"`
}

type ErrorRes struct {
	Err        error
	StatusCode int
}

func (e *ErrorRes) Error() string {
	return e.Err.Error()
}

func NewErrorRes(err error, statusCode int) *ErrorRes {
	return &ErrorRes{
		Err:        err,
		StatusCode: statusCode,
	}
}

func BadRequest(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusBadRequest)
}

func NotFound(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusNotFound)
}

func Forbidden(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusForbidden)
}

func Unauthorized(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusUnauthorized)
}

// Unavailable is used when a backing store (Mongo, S3, NATS) fails.
func Unavailable(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusServiceUnavailable)
}

func Internal(err error) *ErrorRes {
	return NewErrorRes(err, http.StatusInternalServerError)
}
