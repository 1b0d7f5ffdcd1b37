// Package bankconsole exercises a banking HTTP API: it dispatches calls on
// behalf of submitted forms, keeps the issued tokens across restarts and
// retains a short log of the raw responses.
package bankconsole

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8123"

// StatusNetwork marks a log entry for a call that never got a response.
const StatusNetwork = "network"

// Credentials is the persisted pair of access and refresh tokens. Absent
// tokens are empty strings.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Request describes a single call to the banking API.
type Request struct {
	// Path is either an absolute http(s) URL or a path relative to the
	// configured base URL.
	Path   string
	Method string
	// Body is sent verbatim when it is a string or []byte and JSON encoded
	// otherwise. A nil Body sends no body at all.
	Body        interface{}
	IncludeAuth bool
	Label       string
}

// LogEntry summarizes one dispatch attempt.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	// Status is the decimal HTTP status code or StatusNetwork.
	Status  string  `json:"status"`
	Payload Payload `json:"payload"`
	IsError bool    `json:"isError"`
}

// HTTPStatus formats a status code for a LogEntry.
func HTTPStatus(code int) string {
	return strconv.Itoa(code)
}

// String renders the entry as it appears in the response log.
func (e LogEntry) String() string {
	return fmt.Sprintf("%s · %s (%s)\n%s",
		e.Timestamp.Format("15:04:05"), e.Label, e.Status, e.Payload.Format())
}

// Dispatcher performs calls against the banking API and records
// every attempt in a ResponseLog.
type Dispatcher interface {
	// Dispatch performs a call and returns its normalized payload. Non-success
	// statuses return a *StatusError, transport failures a *NetworkError.
	Dispatch(ctx context.Context, req *Request) (Payload, error)
	// BaseURL returns the origin used for relative paths.
	BaseURL() string
	// SetBaseURL replaces the origin used for relative paths.
	SetBaseURL(baseURL string)
}

// TokenStore keeps the Credentials issued by the banking API.
type TokenStore interface {
	// Load reads the persisted Credentials. Missing or corrupt data
	// resolves to empty Credentials.
	Load(ctx context.Context) (Credentials, error)
	// Apply updates whichever tokens are present in a response payload
	// and persists the result.
	Apply(ctx context.Context, payload Payload) (Credentials, error)
	// Credentials returns the current Credentials.
	Credentials() Credentials
	// Subscribe registers a function called after every change.
	Subscribe(fn func(Credentials))
}

// ResponseLog retains the most recent dispatch attempts, newest first.
type ResponseLog interface {
	// Record adds an entry to the front of the log.
	Record(entry LogEntry) LogEntry
	// Entries returns the retained entries, newest first.
	Entries() []LogEntry
	// Failed reports whether the most recent entry was an error.
	Failed() bool
	// String renders the retained entries.
	String() string
}

// CredentialRepository persists the serialized Credentials under a
// single storage key.
type CredentialRepository interface {
	// Read returns the stored value or nil if nothing was stored.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored value.
	Write(ctx context.Context, value []byte) error
}

// SignUpAPI binds registration forms.
type SignUpAPI interface {
	// Register submits a new user registration.
	Register(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Activate confirms a registration with an emailed code.
	Activate(w http.ResponseWriter, r *http.Request) (interface{}, error)
}

// LoginAPI binds login and password recovery forms.
type LoginAPI interface {
	// Login signs in and stores the issued tokens.
	Login(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// ForgotPassword requests a password recovery code.
	ForgotPassword(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// ResetPassword sets a new password with a recovery code.
	ResetPassword(w http.ResponseWriter, r *http.Request) (interface{}, error)
}

// TokenAPI binds the token refresh form and the token view.
type TokenAPI interface {
	// Refresh exchanges a refresh token for new tokens.
	Refresh(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Show describes the stored tokens.
	Show(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// SetBaseURL changes the banking API origin.
	SetBaseURL(w http.ResponseWriter, r *http.Request) (interface{}, error)
}

// RequestAPI binds authenticated reads, the custom request form
// and the response log view.
type RequestAPI interface {
	// Profile fetches the current user's profile.
	Profile(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Accounts fetches the current user's accounts.
	Accounts(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Transactions fetches the current user's transactions.
	Transactions(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Custom sends an arbitrary request.
	Custom(w http.ResponseWriter, r *http.Request) (interface{}, error)
	// Log returns the response log.
	Log(w http.ResponseWriter, r *http.Request) (interface{}, error)
}
