package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Response is the envelope of every JSON body the service writes. Page
// documents travel in Data, field validation messages in Errors.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes the envelope with the given HTTP status. Status is true
// for anything below 400. The body is encoded before the header is written;
// an unencodable payload becomes a 500.
func ResponseJSON(w http.ResponseWriter, code int, message string, data, errors any) {
	var buf bytes.Buffer
	err := json.NewEncoder(&buf).Encode(Response{
		Status:  code < http.StatusBadRequest,
		Message: message,
		Data:    data,
		Errors:  errors,
	})
	if err != nil {
		code = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"status":false,"message":"Internal server error"}` + "\n")
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

// ResponsePage writes a rendered page document. Failed pages still carry the
// document so clients keep navigation and actions.
func ResponsePage(w http.ResponseWriter, code int, message string, page any) {
	ResponseJSON(w, code, message, page, nil)
}

// returns 400 Bad Request with per-field messages
func ResponseBadRequest(w http.ResponseWriter, message string, errors map[string]string) {
	if len(errors) == 0 {
		ResponseJSON(w, http.StatusBadRequest, message, nil, nil)
		return
	}
	ResponseJSON(w, http.StatusBadRequest, message, nil, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, message, nil, nil)
}

// returns 405 Method Not Allowed
func ResponseMethodNotAllowed(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusMethodNotAllowed, message, nil, nil)
}

// returns 429 Too Many Requests
func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusTooManyRequests, message, nil, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, message, nil, nil)
}
