package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	headerContentType   = "Content-Type"
	contentTypeJSONUTF8 = "application/json; charset=utf-8"
)

func RespondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set(headerContentType, contentTypeJSONUTF8)
	RespondWithJSON(w, code, map[string]string{"error": message})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		w.Header().Set(headerContentType, contentTypeJSONUTF8)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(response)
}
