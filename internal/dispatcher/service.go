// Package dispatcher performs calls against the banking API on behalf
// of the console and records every attempt in the response log.
package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
)

const (
	defaultMethod = http.MethodGet
	defaultLabel  = "Request"
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

type service struct {
	logger    log.Logger
	client    Doer
	tokens    console.TokenStore
	responses console.ResponseLog
	now       func() time.Time

	mu      sync.RWMutex
	baseURL string
}

// BaseURL returns the origin used for relative paths.
func (s *service) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return normalizeBase(s.baseURL)
}

// SetBaseURL replaces the origin used for relative paths.
func (s *service) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseURL = baseURL
}

// Dispatch performs a single call. Exactly one log entry is recorded
// per call, before any error is returned.
func (s *service) Dispatch(ctx context.Context, req *console.Request) (console.Payload, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = defaultMethod
	}
	label := req.Label
	if label == "" {
		label = defaultLabel
	}

	url := ResolveURL(s.BaseURL(), req.Path)

	body, hasBody, err := encodeBody(req.Body)
	if err != nil {
		s.record(label, console.StatusNetwork, console.TextPayload(err.Error()), true)
		return console.Payload{}, &console.NetworkError{Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		s.record(label, console.StatusNetwork, console.TextPayload(err.Error()), true)
		return console.Payload{}, &console.NetworkError{Err: err}
	}

	if hasBody {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.IncludeAuth {
		if token := s.tokens.Credentials().AccessToken; token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	level.Debug(s.logger).Log(
		"message", "dispatching request",
		"method", method,
		"url", url,
		"label", label,
		"source", "dispatcher.Dispatch",
	)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.record(label, console.StatusNetwork, console.TextPayload(err.Error()), true)
		return console.Payload{}, &console.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		s.record(label, console.HTTPStatus(resp.StatusCode), console.TextPayload(err.Error()), true)
		return console.Payload{}, &console.NetworkError{
			Err: errors.Wrap(err, "failed to read response body"),
		}
	}

	payload := console.ParsePayload(raw)
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	s.record(label, console.HTTPStatus(resp.StatusCode), payload, !ok)

	if !ok {
		return payload, &console.StatusError{
			StatusCode: resp.StatusCode,
			Msg:        errorMessage(payload, resp),
			Payload:    payload,
		}
	}

	return payload, nil
}

func (s *service) record(label, status string, payload console.Payload, isError bool) {
	s.responses.Record(console.LogEntry{
		Timestamp: s.now(),
		Label:     label,
		Status:    status,
		Payload:   payload,
		IsError:   isError,
	})
}

// ResolveURL joins a path onto a base URL. Absolute http(s) URLs are
// returned unchanged. Relative paths get exactly one leading slash.
func ResolveURL(baseURL, path string) string {
	path = strings.TrimSpace(path)
	if absoluteURL.MatchString(path) {
		return path
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return normalizeBase(baseURL) + path
}

func normalizeBase(baseURL string) string {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = console.DefaultBaseURL
	}
	return strings.TrimSuffix(base, "/")
}

// encodeBody returns the request body. Strings and byte slices are sent
// as they are, everything else is JSON encoded.
func encodeBody(v interface{}) (io.Reader, bool, error) {
	switch b := v.(type) {
	case nil:
		return nil, false, nil
	case string:
		return strings.NewReader(b), true, nil
	case []byte:
		return bytes.NewReader(b), true, nil
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, false, errors.Wrap(err, "cannot encode request body")
		}
		return bytes.NewReader(encoded), true, nil
	}
}

// errorMessage picks the payload's message, then the reason phrase,
// then a generic fallback.
func errorMessage(payload console.Payload, resp *http.Response) string {
	if msg := payload.Message(); msg != "" {
		return msg
	}

	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason != "" {
		return reason
	}

	return console.DefaultErrorMessage
}
