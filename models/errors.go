package models

import (
	"fmt"
	"sort"
	"strings"
)

type ErrorNotFound struct {
	Resource string
	ID       uint
}

func (e ErrorNotFound) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ErrorValidation carries field-level messages keyed by form field name.
type ErrorValidation struct {
	Fields map[string]string
}

func (e ErrorValidation) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
