// internal/util/fielderrors.go
package util

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors collects per-field validation messages. It matches
// ErrValidation under errors.Is so handlers can map it to a 400
// while still returning the individual field messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) succeed for FieldErrors.
func (e FieldErrors) Is(target error) bool {
	return target == ErrValidation
}
