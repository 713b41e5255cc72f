package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate checks creation payloads against their shape contracts.
var validate = validator.New()

// ErrorResponse is the error payload returned by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable message
	// default: Invalid user data
	Message string `json:"message"`

	// Underlying cause, omitted when empty
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

// decodeJSON decodes a creation request body, rejecting unknown fields,
// then validates the result.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

// decodeJSONLenient decodes an update request body, ignoring unknown
// fields, then validates the result.
func decodeJSONLenient(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
