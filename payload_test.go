package bankconsole

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestPayload_Parse(t *testing.T) {
	tt := []struct {
		name   string
		body   string
		kind   PayloadKind
		format string
	}{
		{
			name:   "Empty body",
			body:   "",
			kind:   PayloadEmpty,
			format: EmptyPayload,
		},
		{
			name:   "JSON null",
			body:   "null",
			kind:   PayloadEmpty,
			format: EmptyPayload,
		},
		{
			name:   "Whitespace body",
			body:   "   ",
			kind:   PayloadText,
			format: "   ",
		},
		{
			name:   "Malformed JSON",
			body:   `{"message": "oops"`,
			kind:   PayloadText,
			format: `{"message": "oops"`,
		},
		{
			name:   "Plain text",
			body:   "Service Unavailable",
			kind:   PayloadText,
			format: "Service Unavailable",
		},
		{
			name:   "JSON object keeps field order",
			body:   `{"status":200,"message":"ok","data":{"b":1,"a":2}}`,
			kind:   PayloadJSON,
			format: "{\n  \"status\": 200,\n  \"message\": \"ok\",\n  \"data\": {\n    \"b\": 1,\n    \"a\": 2\n  }\n}",
		},
		{
			name:   "JSON string renders unquoted",
			body:   `"registered"`,
			kind:   PayloadJSON,
			format: "registered",
		},
		{
			name:   "JSON string with escapes",
			body:   `"line one\nline \"two\""`,
			kind:   PayloadJSON,
			format: "line one\nline \"two\"",
		},
		{
			name:   "JSON array stays indented",
			body:   `[1,"a"]`,
			kind:   PayloadJSON,
			format: "[\n  1,\n  \"a\"\n]",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePayload([]byte(tc.body))
			if p.Kind != tc.kind {
				t.Error("kind does not match", cmp.Diff(p.Kind, tc.kind))
			}
			if p.Format() != tc.format {
				t.Error("format does not match", cmp.Diff(p.Format(), tc.format))
			}
		})
	}
}

func TestPayload_Message(t *testing.T) {
	tt := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "String message",
			body:    `{"message":"invalid credentials"}`,
			message: "invalid credentials",
		},
		{
			name:    "Empty message",
			body:    `{"message":""}`,
			message: "",
		},
		{
			name:    "Numeric message",
			body:    `{"message":42}`,
			message: "42",
		},
		{
			name:    "Missing message",
			body:    `{"error":"bad"}`,
			message: "",
		},
		{
			name:    "Non object",
			body:    `[1,2,3]`,
			message: "",
		},
		{
			name:    "Text payload",
			body:    `invalid credentials`,
			message: "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			msg := ParsePayload([]byte(tc.body)).Message()
			if msg != tc.message {
				t.Error("message does not match", cmp.Diff(msg, tc.message))
			}
		})
	}
}

func TestPayload_Data(t *testing.T) {
	tt := []struct {
		name        string
		body        string
		accessToken string
	}{
		{
			name:        "Unwraps data envelope",
			body:        `{"status":200,"data":{"access_token":"inner"}}`,
			accessToken: "inner",
		},
		{
			name:        "Keeps payload without data",
			body:        `{"access_token":"outer"}`,
			accessToken: "outer",
		},
		{
			name:        "Keeps payload with null data",
			body:        `{"data":null,"access_token":"outer"}`,
			accessToken: "outer",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			token := ParsePayload([]byte(tc.body)).Data().StringField("access_token")
			if token != tc.accessToken {
				t.Error("token does not match", cmp.Diff(token, tc.accessToken))
			}
		})
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	v := struct {
		A Payload `json:"a"`
		B Payload `json:"b"`
		C Payload `json:"c"`
	}{
		A: ParsePayload([]byte(`{"x": 1}`)),
		B: TextPayload("plain"),
		C: Payload{},
	}

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal("failed to marshal payloads:", err)
	}

	expected := `{"a":{"x":1},"b":"plain","c":null}`
	if string(b) != expected {
		t.Error("encoded payloads do not match", cmp.Diff(string(b), expected))
	}
}

func TestLogEntry_String(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2024, 3, 1, 14, 5, 9, 0, time.UTC),
		Label:     "Login",
		Status:    HTTPStatus(401),
		Payload:   ParsePayload([]byte(`{"message":"invalid credentials"}`)),
	}

	expected := "14:05:09 · Login (401)\n{\n  \"message\": \"invalid credentials\"\n}"
	if entry.String() != expected {
		t.Error("entry does not match", cmp.Diff(entry.String(), expected))
	}

	entry.Payload = ParsePayload([]byte(`"Account activated"`))
	expected = "14:05:09 · Login (401)\nAccount activated"
	if entry.String() != expected {
		t.Error("entry does not match", cmp.Diff(entry.String(), expected))
	}
}
