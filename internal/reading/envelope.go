package reading

import (
	"bytes"
	"encoding/json"

	"github.com/mcpdict/mcpdict-go/internal/errors"
)

// Envelope is the fixed response wrapper. Version is the store's build
// version stamp in decimal string form; Data is one of the two shapes or
// the language listing. Field order is fixed by the struct, which keeps
// the byte stream deterministic and therefore cacheable and comparable.
type Envelope struct {
	Version string `json:"version"`
	Data    any    `json:"data"`
}

// EncodeEnvelope serializes the envelope as compact UTF-8 JSON without
// escaping non-ASCII text. A nil data value is normalized to an empty
// array; the data key is never null.
func EncodeEnvelope(version string, data any) ([]byte, error) {
	if data == nil {
		data = []any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Envelope{Version: version, Data: data}); err != nil {
		return nil, errors.New(err).
			Component("reading").
			Category(errors.CategoryJSONDecode).
			Build()
	}

	// Encoder appends a newline after the value.
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// marshalNoEscape is json.Marshal without HTML escaping, used by the
// custom marshalers so <, > and & survive verbatim at every nesting level.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
