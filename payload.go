package bankconsole

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// EmptyPayload is how an empty or absent payload renders.
const EmptyPayload = "<empty response>"

// PayloadKind tags the variant held by a Payload.
type PayloadKind int

const (
	// PayloadEmpty is an empty body or a JSON null.
	PayloadEmpty PayloadKind = iota
	// PayloadJSON is a body that parsed as JSON.
	PayloadJSON
	// PayloadText is a body that did not parse as JSON.
	PayloadText
)

// Payload is a normalized response body: empty, JSON or raw text.
type Payload struct {
	Kind PayloadKind
	// Raw holds the original JSON text of a PayloadJSON.
	Raw json.RawMessage
	// Value holds the decoded JSON of a PayloadJSON. Numbers are json.Number.
	Value interface{}
	// Text holds the body of a PayloadText.
	Text string
}

// TextPayload returns a PayloadText.
func TextPayload(text string) Payload {
	return Payload{Kind: PayloadText, Text: text}
}

// JSONPayload returns a PayloadJSON for an already decoded value.
// A nil value is an empty payload.
func JSONPayload(v interface{}) Payload {
	if v == nil {
		return Payload{}
	}
	return Payload{Kind: PayloadJSON, Value: v}
}

// ParsePayload normalizes a response body. Bodies that are not valid
// JSON degrade to text rather than failing.
func ParsePayload(body []byte) Payload {
	if len(body) == 0 {
		return Payload{}
	}

	if !json.Valid(body) {
		return TextPayload(string(body))
	}

	var v interface{}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return TextPayload(string(body))
	}
	if v == nil {
		return Payload{}
	}

	raw := make(json.RawMessage, len(body))
	copy(raw, body)
	return Payload{Kind: PayloadJSON, Raw: raw, Value: v}
}

// IsEmpty reports whether the payload carries nothing.
func (p Payload) IsEmpty() bool {
	return p.Kind == PayloadEmpty
}

// Field returns a top level field of a JSON object payload.
func (p Payload) Field(name string) (interface{}, bool) {
	if p.Kind != PayloadJSON {
		return nil, false
	}
	obj, ok := p.Value.(map[string]interface{})
	if !ok {
		return nil, false
	}
	v, ok := obj[name]
	return v, ok
}

// StringField returns a top level string field of a JSON object payload,
// or an empty string.
func (p Payload) StringField(name string) string {
	v, _ := p.Field(name)
	s, _ := v.(string)
	return s
}

// Message returns the payload's "message" field when it is set to
// a truthy value.
func (p Payload) Message() string {
	v, ok := p.Field("message")
	if !ok || !truthy(v) {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Data unwraps a {"data": ...} response envelope. Payloads without
// a truthy data field are returned unchanged.
func (p Payload) Data() Payload {
	v, ok := p.Field("data")
	if !ok || !truthy(v) {
		return p
	}
	return JSONPayload(v)
}

// Format renders the payload for the response log: indented JSON,
// raw text or the EmptyPayload placeholder. JSON strings render unquoted.
func (p Payload) Format() string {
	switch p.Kind {
	case PayloadText:
		return p.Text
	case PayloadJSON:
		if s, ok := p.Value.(string); ok {
			return s
		}
		if len(p.Raw) > 0 {
			var buf bytes.Buffer
			if err := json.Indent(&buf, bytes.TrimSpace(p.Raw), "", "  "); err == nil {
				return buf.String()
			}
		}

		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p.Value); err != nil {
			return fmt.Sprint(p.Value)
		}
		return strings.TrimSuffix(buf.String(), "\n")
	default:
		return EmptyPayload
	}
}

// MarshalJSON encodes JSON payloads as themselves, text payloads as
// strings and empty payloads as null.
func (p Payload) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PayloadJSON:
		if len(p.Raw) > 0 {
			return bytes.TrimSpace(p.Raw), nil
		}
		return json.Marshal(p.Value)
	case PayloadText:
		return json.Marshal(p.Text)
	default:
		return []byte("null"), nil
	}
}

// truthy follows the loose truthiness the banking API's envelopes rely on.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	default:
		return true
	}
}
