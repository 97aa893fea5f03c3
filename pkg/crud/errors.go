package crud

import (
	"errors"
	"net/http"
)

// ErrPermission marks a request denied by the permission gate.
var ErrPermission = errors.New("crud: permission denied")

// HTTPError is implemented by errors that carry their own HTTP status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError pairs an error with the HTTP status it should surface as.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
	}
	if code <= 0 {
		code = http.StatusInternalServerError
	}
	http.Error(w, http.StatusText(code), code)
}
