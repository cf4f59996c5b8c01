package middleware

import (
	"net/http"

	"shipping-quote-service/request"
)

// Cors permits all origins: quotes are requested straight from the
// storefront's browser session.
func Cors() Middleware {
	return func(next Handler) Handler {
		return HandlerFunc(func(ctx *request.Context) error {
			header := ctx.ResponseWriter().Header()
			header.Set("Access-Control-Allow-Origin", "*")
			header.Set("Access-Control-Allow-Headers", "authorization, x-request-id, content-type")
			header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")

			if ctx.Request().Method == http.MethodOptions {
				ctx.ResponseWriter().WriteHeader(http.StatusOK)
				return nil
			}

			return next.Handle(ctx)
		})
	}
}
