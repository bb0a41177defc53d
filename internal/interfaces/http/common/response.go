package common

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// MaxRequestBody caps decoded request bodies. Nothing the dashboard
// submits is anywhere near this size.
const MaxRequestBody = 1 << 20

// WriteJSON is the single JSON response writer, keeping Content-Type
// handling and encode-failure logging in one place.
func WriteJSON(log *logrus.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.WithError(err).Error("failed to encode JSON response")
	}
}

// WriteError writes the standard error envelope.
func WriteError(log *logrus.Logger, w http.ResponseWriter, status int, message string) {
	WriteJSON(log, w, status, map[string]string{"error": message})
}
