package middleware

import (
	"encoding/json"
	"net/http"
)

// writeEnvelopeError writes the API error envelope for responses produced
// before a handler runs.
func writeEnvelopeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
