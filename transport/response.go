package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/campusnest/backend/utils/errors"
)

// envelope is the response shape every endpoint returns. Login/profile
// endpoints populate User; everything else uses Data.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	User    any    `json:"user,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeUser(w http.ResponseWriter, user any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, User: user})
}

func writeCreated(w http.ResponseWriter, user any) {
	writeJSON(w, http.StatusCreated, envelope{Success: true, User: user})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message})
}

// writeError maps business failures to their stable status and message;
// anything else falls through to a 500 carrying the raw message for
// diagnostics.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if stderrors.As(err, &ce) {
		writeJSON(w, ce.ErrorHTTPCode(), envelope{Success: false, Error: ce.Error()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: err.Error()})
}
