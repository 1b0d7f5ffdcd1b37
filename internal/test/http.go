package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// ServerResp is a path and response for an external test server.
type ServerResp struct {
	Path       string
	Resp       string
	StatusCode int
}

// Captured is a request received by a test server.
type Captured struct {
	Method  string
	Path    string
	Header  http.Header
	Body    string
	HasBody bool
}

// Recorder collects requests received by a test server.
type Recorder struct {
	mu       sync.Mutex
	requests []Captured
}

// Requests returns the requests received so far.
func (r *Recorder) Requests() []Captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Captured(nil), r.requests...)
}

// Last returns the most recent request.
func (r *Recorder) Last() Captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requests) == 0 {
		return Captured{}
	}
	return r.requests[len(r.requests)-1]
}

func (r *Recorder) add(c Captured) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, c)
}

// Server creates an external test server with mocked responses.
// Responses are written verbatim, without a trailing newline.
func Server(resps ...ServerResp) (*httptest.Server, *Recorder) {
	rec := &Recorder{}
	router := mux.NewRouter()
	for i := range resps {
		sr := resps[i]
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := new(bytes.Buffer)
			_, _ = body.ReadFrom(r.Body)
			rec.add(Captured{
				Method:  r.Method,
				Path:    r.URL.Path,
				Header:  r.Header.Clone(),
				Body:    body.String(),
				HasBody: body.Len() > 0,
			})

			w.Header().Set("Content-Type", "application/json")

			undefinedStatus := 0
			if sr.StatusCode != undefinedStatus {
				w.WriteHeader(sr.StatusCode)
			}

			fmt.Fprint(w, sr.Resp)
		})

		router.HandleFunc(sr.Path, handler)
	}

	s := httptest.NewServer(router)
	return s, rec
}

// ValidateErrMessage checks the message of a console error response.
func ValidateErrMessage(expectedMsg string, body *bytes.Buffer) error {
	if expectedMsg == "" {
		return nil
	}

	var errResponse map[string]map[string]string
	err := json.NewDecoder(body).Decode(&errResponse)
	if err != nil {
		return err
	}

	if errResponse["error"]["message"] != expectedMsg {
		return errors.Errorf("incorrect error response, want '%s' got '%s'",
			expectedMsg, errResponse["error"]["message"])
	}

	return nil
}

// ValidateStatusMessage checks the message of a console success response.
func ValidateStatusMessage(expectedMsg string, body *bytes.Buffer) error {
	var resp struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return err
	}

	if resp.Status != "success" {
		return errors.Errorf("incorrect status, want 'success' got '%s'", resp.Status)
	}

	if resp.Message != expectedMsg {
		return errors.Errorf("incorrect status message, want '%s' got '%s'",
			expectedMsg, resp.Message)
	}

	return nil
}
