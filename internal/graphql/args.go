package graphql

import (
	"inkwell/internal/models"
)

// Argument maps only carry keys the client actually supplied, which is what
// lets the resolvers preserve the absent / explicit-null distinction the
// sparse-patch inputs depend on.

func argUint(args map[string]interface{}, name string) (uint, bool) {
	v, ok := args[name].(int)
	if !ok || v <= 0 {
		return 0, false
	}
	return uint(v), true
}

func argString(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

// argStringPtr returns a pointer when the key is present with a string value,
// nil otherwise.
func argStringPtr(args map[string]interface{}, name string) *string {
	if s, ok := args[name].(string); ok {
		return &s
	}
	return nil
}

// argOptionalString maps a key onto the tri-state Optional: missing key is
// the zero Optional, a present null is an explicit clear.
func argOptionalString(args map[string]interface{}, name string) models.Optional[string] {
	raw, present := args[name]
	if !present {
		return models.Optional[string]{}
	}
	if raw == nil {
		return models.Null[string]()
	}
	if s, ok := raw.(string); ok {
		return models.Some(s)
	}
	return models.Optional[string]{}
}

func argBoolPtr(args map[string]interface{}, name string) *bool {
	if b, ok := args[name].(bool); ok {
		return &b
	}
	return nil
}

func argBoolDefault(args map[string]interface{}, name string, def bool) bool {
	if b, ok := args[name].(bool); ok {
		return b
	}
	return def
}

func argIntDefault(args map[string]interface{}, name string, def int) int {
	if v, ok := args[name].(int); ok {
		return v
	}
	return def
}

// argUintSlice returns the id list and whether the key was supplied at all.
// A present empty list comes back as a non-nil empty slice.
func argUintSlice(args map[string]interface{}, name string) ([]uint, bool) {
	raw, present := args[name]
	if !present || raw == nil {
		return nil, false
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, false
	}
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if v, ok := item.(int); ok && v > 0 {
			ids = append(ids, uint(v))
		}
	}
	return ids, true
}

// objectArg returns a nested input-object argument as a map.
func objectArg(args map[string]interface{}, name string) map[string]interface{} {
	if m, ok := args[name].(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{}
}
