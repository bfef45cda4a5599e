// Package httpx concentra os helpers de request/response JSON usados pelos
// handlers de todos os módulos.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Message é o envelope padrão de erro e de confirmação:
//
//	{ "message": "Usuário não encontrado." }
type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

// DecodeJSON decodifica o corpo da requisição em v.
// Campos desconhecidos são ignorados, como no resto da API.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
