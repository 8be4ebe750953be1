package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes = 1 << 20

// ErrMalformedBody is returned by DecodeJSON for bodies that are not a single
// JSON value of the expected shape.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into the given struct.
// Unknown fields are ignored. An empty body decodes as an empty object.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrMalformedBody)
	}
	return nil
}
