package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Request bodies above this size are rejected before decoding.
const maxRequestBody = 1 << 20

// Validator is implemented by request DTOs that carry field-level checks.
// Validate returns one message per offending field; empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the JSON request body into dest, rejecting unknown
// fields, then runs dest's Validate if it has one. On any failure it writes a
// 400 response listing the offending fields and returns false; the caller must
// stop handling the request when it does.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if fieldErrs := v.Validate(); len(fieldErrs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(fieldErrs, "; "))
			return false
		}
	}
	return true
}
