package test

import (
	"context"
	"sync"

	console "github.com/fmitra/bankconsole"
)

// Dispatcher mocks console.Dispatcher interface.
type Dispatcher struct {
	DispatchFn func(req *console.Request) (console.Payload, error)
	baseURL    string
	mu         sync.Mutex
	Requests   []*console.Request
	Calls      struct {
		Dispatch   int
		SetBaseURL int
	}
}

// Dispatch mock.
func (m *Dispatcher) Dispatch(ctx context.Context, req *console.Request) (console.Payload, error) {
	m.mu.Lock()
	m.Calls.Dispatch++
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.DispatchFn == nil {
		return console.Payload{}, nil
	}
	return m.DispatchFn(req)
}

// LastRequest returns the most recently dispatched request.
func (m *Dispatcher) LastRequest() *console.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return nil
	}
	return m.Requests[len(m.Requests)-1]
}

// BaseURL mock.
func (m *Dispatcher) BaseURL() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.baseURL == "" {
		return console.DefaultBaseURL
	}
	return m.baseURL
}

// SetBaseURL mock.
func (m *Dispatcher) SetBaseURL(baseURL string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.SetBaseURL++
	m.baseURL = baseURL
}

// TokenStore mocks console.TokenStore interface.
type TokenStore struct {
	Creds   console.Credentials
	ApplyFn func(payload console.Payload) (console.Credentials, error)
	Applied []console.Payload
	Calls   struct {
		Load        int
		Apply       int
		Credentials int
		Subscribe   int
	}
}

// Load mock.
func (m *TokenStore) Load(ctx context.Context) (console.Credentials, error) {
	m.Calls.Load++
	return m.Creds, nil
}

// Apply mock.
func (m *TokenStore) Apply(ctx context.Context, payload console.Payload) (console.Credentials, error) {
	m.Calls.Apply++
	m.Applied = append(m.Applied, payload)
	if m.ApplyFn != nil {
		return m.ApplyFn(payload)
	}
	return m.Creds, nil
}

// Credentials mock.
func (m *TokenStore) Credentials() console.Credentials {
	m.Calls.Credentials++
	return m.Creds
}

// Subscribe mock.
func (m *TokenStore) Subscribe(fn func(console.Credentials)) {
	m.Calls.Subscribe++
}

// CredentialRepository mocks console.CredentialRepository with
// an in-memory value.
type CredentialRepository struct {
	Value   []byte
	ReadFn  func() ([]byte, error)
	WriteFn func(value []byte) error
	Calls   struct {
		Read  int
		Write int
	}
}

// Read mock.
func (m *CredentialRepository) Read(ctx context.Context) ([]byte, error) {
	m.Calls.Read++
	if m.ReadFn != nil {
		return m.ReadFn()
	}
	return m.Value, nil
}

// Write mock.
func (m *CredentialRepository) Write(ctx context.Context, value []byte) error {
	m.Calls.Write++
	if m.WriteFn != nil {
		return m.WriteFn(value)
	}
	m.Value = append([]byte(nil), value...)
	return nil
}

// Logger mocks a go-kit log.Logger.
type Logger struct {
	mu    sync.Mutex
	Calls struct {
		Log int
	}
}

// Log mock.
func (m *Logger) Log(keyvals ...interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Log++
	return nil
}
