// Package httpx holds the JSON response helpers shared by the HTTP handlers.
package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/melvinb/postfeed/internal/apperr"
)

type envelope struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

type failure struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OK writes a success envelope {ok: true, data: ...}.
func OK(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{OK: true, Data: data})
}

// Envelope serializes a success envelope without writing it, for callers
// that cache the marshaled payload.
func Envelope(data interface{}) ([]byte, error) {
	return json.Marshal(envelope{OK: true, Data: data})
}

// Raw writes an already-serialized JSON payload.
func Raw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// Fail maps err through apperr.Status and writes {status, message}. The
// status field is "fail" for client errors and "error" for server errors.
func Fail(w http.ResponseWriter, err error) {
	code, msg := apperr.Status(err)
	kind := "fail"
	if code >= http.StatusInternalServerError {
		kind = "error"
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(failure{Status: kind, Message: msg})
}

// BadRequest reports an unreadable request body.
func BadRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(failure{Status: "fail", Message: msg})
}
