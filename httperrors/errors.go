package httperrors

import (
	"net/http"

	"github.com/txix-open/isp-kit/json"
	"shipping-quote-service/domain"
)

// HttpError separates what the client is allowed to see (userMessage) from
// what goes to the log (err). Raw carrier or internal error text must never
// reach the response body.
type HttpError struct {
	statusCode  int
	userMessage string
	err         error
}

func New(statusCode int, userMessage string, internalError error) HttpError {
	return HttpError{
		statusCode:  statusCode,
		userMessage: userMessage,
		err:         internalError,
	}
}

func (e HttpError) Error() string {
	return e.err.Error()
}

func (e HttpError) StatusCode() int {
	return e.statusCode
}

func (e HttpError) WriteError(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.statusCode)
	return json.NewEncoder(w).Encode(domain.ErrorResponse{
		Success: false,
		Error:   e.userMessage,
	})
}
