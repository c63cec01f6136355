package request

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexString accepts a JSON string, number or boolean and keeps its text.
// Browser forms send installments and insurance either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(strings.TrimSpace(string(b)))
	return nil
}

func (f FlexString) String() string {
	return strings.TrimSpace(string(f))
}
