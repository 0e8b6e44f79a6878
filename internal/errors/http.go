package errors

import (
	"encoding/json"
	"errors"
	"net/http"
)

// errorResponse is the JSON body written for failed requests.
type errorResponse struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// WriteHTTP writes err as a JSON error response with the status
// derived from its code. Plain errors map to an internal error
// without leaking their text.
func WriteHTTP(w http.ResponseWriter, err error) {
	resp := errorResponse{
		Code:    CodeInternal,
		Message: "internal error",
	}

	var e *Error
	if errors.As(err, &e) {
		resp.Code = e.Code
		resp.Message = e.Message
		resp.Meta = e.Meta
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Code.HTTPStatus())
	_ = json.NewEncoder(w).Encode(resp)
}
