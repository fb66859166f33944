package generation

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormatResponse turns a response body into reply text.
//
// A JSON string is unwrapped to its contents. Any other JSON value is
// re-encoded compactly with object keys sorted and numbers kept exactly as
// sent, so equal documents always format the same. Bodies that are not JSON
// are returned unchanged.
func FormatResponse(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return string(body)
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
		return string(body)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return string(body)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
