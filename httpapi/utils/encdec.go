package utils

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/vmihailenco/msgpack/v5"
)

// Validator is an object that can be validated.
type Validator interface {
	Validate() error
}

// DecodeValid decodes the request body into the object and then validates it.
func DecodeValid[T Validator](r *http.Request) (T, error) {
	var v T
	ctype, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return v, fmt.Errorf("invalid content type: %w", err)
	}
	switch ctype {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			return v, fmt.Errorf("decode json: %w", err)
		}
	case "application/msgpack":
		dec := msgpack.NewDecoder(r.Body)
		// This allows the message pack decoder to use the json struct tags.
		dec.SetCustomStructTag("json")
		if err := dec.Decode(&v); err != nil {
			return v, fmt.Errorf("decode msgpack: %w", err)
		}
	default:
		return v, fmt.Errorf("invalid content type %s expected application/json or application/msgpack", ctype)
	}
	// ---------------------------
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("validation error: %w", err)
	}
	// ---------------------------
	return v, nil
}
