package requestapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
)

type customRequest struct {
	Method   string `json:"method"`
	Endpoint string `json:"endpoint"`
	Body     string `json:"body"`
}

func decodeCustomRequest(r *http.Request) (*customRequest, error) {
	var req customRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		return nil, errors.Wrap(console.ErrBadRequest("invalid JSON request"), err.Error())
	}

	req.Method = strings.ToUpper(strings.TrimSpace(req.Method))
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	if strings.ContainsAny(req.Method, " \t\r\n") {
		return nil, console.ErrBadRequest("invalid request method")
	}

	return &req, nil
}

// parseBody converts a free-form body into a request body. Blank input
// sends no body, valid JSON is sent as JSON and anything else is sent
// as trimmed text. A JSON string is sent as its unquoted text.
func parseBody(raw string) interface{} {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	if !json.Valid([]byte(trimmed)) {
		return trimmed
	}

	var text string
	if err := json.Unmarshal([]byte(trimmed), &text); err == nil {
		return text
	}

	return json.RawMessage(trimmed)
}
