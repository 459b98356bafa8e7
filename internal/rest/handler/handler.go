// Package handler implements the REST endpoints.
package handler

import (
	"fmt"
	"net/http"

	"github.com/bytedance/sonic"
)

// writeJSON writes a JSON response with an explicit status code.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	return sonic.ConfigDefault.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON request body.
func decodeBody(r *http.Request, v any) error {
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}
