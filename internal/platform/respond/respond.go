// Package respond centraliza las respuestas JSON de los handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse es el cuerpo de todo error de la API.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error escribe {"error": msg}. msg nunca debe llevar detalle interno.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}
