package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrijs2005/earntrack/internal/common"
)

// AppHandler is a handler function that returns an error instead of writing
// error responses itself.
type AppHandler func(w http.ResponseWriter, r *http.Request) error

// MakeHandler adapts an AppHandler to the standard http.HandlerFunc
// signature. Returned errors are logged and turned into a standardized JSON
// error response.
func MakeHandler(handler AppHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := handler(w, r)
		if err == nil {
			// the handler wrote its own successful response
			return
		}

		var httpErr *HTTPError
		var publicMessage string
		var statusCode int

		switch {
		case errors.As(err, &httpErr):
			statusCode = httpErr.Code
			publicMessage = httpErr.Message
			logLevel := slog.LevelWarn
			if statusCode >= 500 {
				logLevel = slog.LevelError
			}
			slog.Log(r.Context(), logLevel, "Client error response",
				"code", httpErr.Code,
				"msg", httpErr.Message,
				"path", r.URL.Path,
				"method", r.Method,
			)

		case errors.Is(err, common.ErrorNotFound):
			statusCode = http.StatusNotFound
			publicMessage = msgNotFound
			slog.Info("Resource not found", "path", r.URL.Path, "method", r.Method)

		default:
			// store failures and everything unexpected stay opaque
			statusCode = http.StatusInternalServerError
			publicMessage = msgInternalServer
			slog.Error("Unhandled internal error", "path", r.URL.Path, "method", r.Method, "error", err)
		}

		RespondWithJSON(w, statusCode, map[string]string{"error": publicMessage})
	}
}
