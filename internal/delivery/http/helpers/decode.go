package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest with unknown fields
// disallowed. On failure it writes a 400 JSON error and returns false;
// callers should return immediately when it does.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return false
	}
	return true
}
