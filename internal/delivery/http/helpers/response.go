package helpers

import (
	"encoding/json"
	"net/http"
)

// DataResponse is the success envelope: the payload under a "data" key.
// swagger:model DataResponse
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope: a single human-readable message.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteData sets Content-Type to application/json, writes statusCode, and
// encodes the payload wrapped as {"data": ...}.
func WriteData(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// WriteError sets Content-Type to application/json, writes statusCode, and
// encodes {"error": message}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes the body as-is, without an envelope.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
