package middleware

import (
	"net/http"

	"github.com/txix-open/isp-kit/log"
	"shipping-quote-service/httperrors"
	"shipping-quote-service/request"
)

type HttpError interface {
	WriteError(w http.ResponseWriter) error
}

// ErrorHandler logs the full internal error and writes only a safe message
// to the client.
func ErrorHandler(logger log.Logger) Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			err := next.Handle(ctx)
			if err == nil {
				return nil
			}

			logger.Error(ctx.Context(), err)

			httpErr, ok := err.(HttpError)
			if ok {
				return httpErr.WriteError(ctx.ResponseWriter())
			}

			return httperrors.
				New(http.StatusInternalServerError, "internal service error", err).
				WriteError(ctx.ResponseWriter())
		})
	}
}
