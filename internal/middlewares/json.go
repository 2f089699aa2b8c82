package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// parsedJSONDataFieldType is the type of the context key holding decoded
// request bodies.
type parsedJSONDataFieldType string

// parsedJSONDataField is the context key holding decoded request bodies.
const parsedJSONDataField parsedJSONDataFieldType = "parsedJSONDataField"

// ModelParameter covers both single models and slices of models.
type ModelParameter interface {
	interface{} | []interface{}
}

// JSONMiddleware decodes a JSON request body into Model and stores it in
// the request context for the handler.
func JSONMiddleware[Model ModelParameter](next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
			EncodeJSONError(w, "Content-Type is not application/json", http.StatusUnsupportedMediaType)
			return
		}

		var parsedData Model
		var buf bytes.Buffer

		if _, err := buf.ReadFrom(r.Body); err != nil {
			EncodeJSONError(w, fmt.Sprintf("Error reading request body: %s", err.Error()), http.StatusBadRequest)
			return
		}

		if err := json.Unmarshal(buf.Bytes(), &parsedData); err != nil {
			EncodeJSONError(w, fmt.Sprintf("Error parsing JSON data: %s", err.Error()), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), parsedJSONDataField, parsedData)))
	})
}

// GetParsedJSONData retrieves the decoded request body from the context.
func GetParsedJSONData[Model ModelParameter](w http.ResponseWriter, r *http.Request) Model {
	data, ok := r.Context().Value(parsedJSONDataField).(Model)

	if !ok {
		EncodeJSONError(w, "Could not retrieve data from context", http.StatusInternalServerError)
		var empty Model
		return empty
	}

	return data
}

// EncodeJSONResponse encodes data as JSON and writes it with the given
// status code.
func EncodeJSONResponse[Model any](w http.ResponseWriter, data Model, statusCode int) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := json.Marshal(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error encoding JSON response: %s", err.Error()), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	w.Write(resp)
}

// EncodeJSONError writes the {success: false, message: ...} error envelope
// every endpoint uses.
func EncodeJSONError(w http.ResponseWriter, message string, statusCode int) {
	EncodeJSONResponse(w, map[string]interface{}{
		"success": false,
		"message": message,
	}, statusCode)
}
