package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shubhamkr/streamtube-backend/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes a success envelope with the given payload and message.
func WriteSuccess(w http.ResponseWriter, statusCode int, data any, message string) {
	_, _ = WriteJSON(w, models.NewSuccessResponse(statusCode, data, message), statusCode)
}

// WriteError writes a failure envelope. Only caller-safe messages may be
// passed here; internal error details belong in the logs.
func WriteError(w http.ResponseWriter, statusCode int, message string, errs ...string) {
	_, _ = WriteJSON(w, models.NewErrorResponse(statusCode, message, errs...), statusCode)
}
