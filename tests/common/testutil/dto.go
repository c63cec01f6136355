//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"guarupark-checkout/internal/domain/checkout"

	"github.com/stretchr/testify/require"
)

// DtoMap round-trips v through JSON so tests can drop or retype single keys.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// FormFields is the wire shape of a field update body.
func FormFields(fields map[checkout.FieldID]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[string(k)] = v
	}
	return out
}
