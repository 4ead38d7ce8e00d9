// Package bind decodes and validates a JSON request body into a struct.
package bind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/DevOps-Sum22-Inventory-Squad/inventory/config"
	"github.com/DevOps-Sum22-Inventory-Squad/inventory/pkg/validate"
)

// ErrEmptyBody is returned for a missing body or JSON null.
var ErrEmptyBody = errors.New("body of request contained no data")

// ValidationErrors maps json field names to rule failures.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, v[k])
	}
	return strings.Join(msgs, " ")
}

// JSON caps r.Body at MAX_BODY_BYTES, then decodes and validates it into dest.
func JSON(r *http.Request, dest interface{}) error {
	r.Body = http.MaxBytesReader(nil, r.Body, config.MaxBodyBytes())
	return Decode(r.Body, dest)
}

// Decode reads one JSON value from rd into dest and runs struct validation.
// Failures are ErrEmptyBody, ValidationErrors, or a descriptive decode error.
func Decode(rd io.Reader, dest interface{}) error {
	raw, err := io.ReadAll(rd)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return fmt.Errorf("request body too large (max %d bytes)", maxErr.Limit)
		}
		return fmt.Errorf("read body: %w", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return ErrEmptyBody
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			if typeErr.Field == "" {
				return fmt.Errorf("body must be a JSON object, not %s", typeErr.Value)
			}
			return fmt.Errorf("the %s field must be of type %s, not %s", typeErr.Field, typeErr.Type, typeErr.Value)
		}
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if errs := validate.Struct(dest); validate.HasErrors(errs) {
		return ValidationErrors(errs)
	}
	return nil
}
