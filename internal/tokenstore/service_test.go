package tokenstore

import (
	"bytes"
	"context"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
	"github.com/fmitra/bankconsole/internal/test"
)

func TestTokenStore_Load(t *testing.T) {
	tt := []struct {
		name     string
		stored   []byte
		readErr  error
		creds    console.Credentials
		warnings bool
		writes   int
	}{
		{
			name:   "Nothing stored",
			stored: nil,
			creds:  console.Credentials{},
			writes: 1,
		},
		{
			name:   "Stored record",
			stored: []byte(`{"accessToken":"access","refreshToken":"refresh"}`),
			creds:  console.Credentials{AccessToken: "access", RefreshToken: "refresh"},
			writes: 1,
		},
		{
			name:   "Partial record",
			stored: []byte(`{"refreshToken":"refresh"}`),
			creds:  console.Credentials{RefreshToken: "refresh"},
			writes: 1,
		},
		{
			name:     "Corrupt record",
			stored:   []byte(`{"accessToken":`),
			creds:    console.Credentials{},
			warnings: true,
			writes:   1,
		},
		{
			name:     "Wrong field types",
			stored:   []byte(`{"accessToken":42,"refreshToken":"refresh"}`),
			creds:    console.Credentials{},
			warnings: true,
			writes:   1,
		},
		{
			name:     "Unreadable storage",
			readErr:  errors.New("disk on fire"),
			creds:    console.Credentials{},
			warnings: true,
			writes:   0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &test.CredentialRepository{Value: tc.stored}
			if tc.readErr != nil {
				repo.ReadFn = func() ([]byte, error) {
					return nil, tc.readErr
				}
			}

			var buf bytes.Buffer
			svc := NewService(repo, WithLogger(log.NewLogfmtLogger(&buf)))

			creds, err := svc.Load(ctx)
			if err != nil {
				t.Fatal("expected nil error:", err)
			}

			if !cmp.Equal(creds, tc.creds) {
				t.Error("credentials do not match", cmp.Diff(creds, tc.creds))
			}
			if !cmp.Equal(svc.Credentials(), tc.creds) {
				t.Error("stored credentials do not match", cmp.Diff(svc.Credentials(), tc.creds))
			}

			hasWarning := bytes.Contains(buf.Bytes(), []byte("level=warn"))
			if hasWarning != tc.warnings {
				t.Errorf("warning logged mismatch, want %v got %v: %s",
					tc.warnings, hasWarning, buf.String())
			}

			if repo.Calls.Write != tc.writes {
				t.Error("write count mismatch", cmp.Diff(repo.Calls.Write, tc.writes))
			}
		})
	}
}

func TestTokenStore_Apply(t *testing.T) {
	initial := console.Credentials{AccessToken: "old-access", RefreshToken: "old-refresh"}

	tt := []struct {
		name    string
		payload console.Payload
		creds   console.Credentials
		writes  int
	}{
		{
			name:    "Both tokens",
			payload: console.ParsePayload([]byte(`{"access_token":"new-access","refresh_token":"new-refresh"}`)),
			creds:   console.Credentials{AccessToken: "new-access", RefreshToken: "new-refresh"},
			writes:  1,
		},
		{
			name:    "Refresh token only",
			payload: console.ParsePayload([]byte(`{"refresh_token":"new-refresh"}`)),
			creds:   console.Credentials{AccessToken: "old-access", RefreshToken: "new-refresh"},
			writes:  1,
		},
		{
			name:    "Access token only",
			payload: console.ParsePayload([]byte(`{"access_token":"new-access","expires_in":300}`)),
			creds:   console.Credentials{AccessToken: "new-access", RefreshToken: "old-refresh"},
			writes:  1,
		},
		{
			name:    "Empty token values",
			payload: console.ParsePayload([]byte(`{"access_token":"","refresh_token":null}`)),
			creds:   initial,
			writes:  1,
		},
		{
			name:    "Text payload",
			payload: console.TextPayload("registered"),
			creds:   initial,
			writes:  1,
		},
		{
			name:    "Empty payload",
			payload: console.Payload{},
			creds:   initial,
			writes:  0,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &test.CredentialRepository{
				Value: []byte(`{"accessToken":"old-access","refreshToken":"old-refresh"}`),
			}
			svc := NewService(repo)
			if _, err := svc.Load(ctx); err != nil {
				t.Fatal("failed to load credentials:", err)
			}
			repo.Calls.Write = 0

			creds, err := svc.Apply(ctx, tc.payload)
			if err != nil {
				t.Fatal("expected nil error:", err)
			}

			if !cmp.Equal(creds, tc.creds) {
				t.Error("credentials do not match", cmp.Diff(creds, tc.creds))
			}
			if repo.Calls.Write != tc.writes {
				t.Error("write count mismatch", cmp.Diff(repo.Calls.Write, tc.writes))
			}
		})
	}
}

func TestTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := &test.CredentialRepository{}

	svc := NewService(repo)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatal("failed to load credentials:", err)
	}

	payload := console.ParsePayload([]byte(`{"access_token":"access","refresh_token":"refresh"}`))
	applied, err := svc.Apply(ctx, payload)
	if err != nil {
		t.Fatal("failed to apply tokens:", err)
	}

	reloaded, err := NewService(repo).Load(ctx)
	if err != nil {
		t.Fatal("failed to reload credentials:", err)
	}

	if !cmp.Equal(applied, reloaded) {
		t.Error("reloaded credentials do not match", cmp.Diff(applied, reloaded))
	}
}

func TestTokenStore_NotifiesObservers(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&test.CredentialRepository{})

	var seen []console.Credentials
	svc.Subscribe(func(c console.Credentials) {
		seen = append(seen, c)
	})

	if _, err := svc.Load(ctx); err != nil {
		t.Fatal("failed to load credentials:", err)
	}
	if _, err := svc.Apply(ctx, console.ParsePayload([]byte(`{"access_token":"a"}`))); err != nil {
		t.Fatal("failed to apply tokens:", err)
	}

	expected := []console.Credentials{
		{},
		{AccessToken: "a"},
	}
	if !cmp.Equal(seen, expected) {
		t.Error("observed credentials do not match", cmp.Diff(seen, expected))
	}
}

func TestTokenStore_ReadFailureKeepsStoredRecord(t *testing.T) {
	ctx := context.Background()
	stored := []byte(`{"accessToken":"access","refreshToken":"refresh"}`)
	repo := &test.CredentialRepository{
		Value: stored,
		ReadFn: func() ([]byte, error) {
			return nil, errors.New("i/o timeout")
		},
	}
	svc := NewService(repo)

	var seen []console.Credentials
	svc.Subscribe(func(c console.Credentials) {
		seen = append(seen, c)
	})

	creds, err := svc.Load(ctx)
	if err != nil {
		t.Fatal("expected nil error:", err)
	}
	if !cmp.Equal(creds, console.Credentials{}) {
		t.Error("credentials do not match", cmp.Diff(creds, console.Credentials{}))
	}
	if string(repo.Value) != string(stored) {
		t.Error("stored record should not be overwritten", cmp.Diff(string(repo.Value), string(stored)))
	}
	if len(seen) != 1 {
		t.Errorf("observers should be notified once, got %d", len(seen))
	}
}

func TestTokenStore_WriteFailure(t *testing.T) {
	ctx := context.Background()
	repo := &test.CredentialRepository{
		WriteFn: func(value []byte) error {
			return errors.New("read-only filesystem")
		},
	}
	svc := NewService(repo)

	creds, err := svc.Apply(ctx, console.ParsePayload([]byte(`{"access_token":"a"}`)))
	if err == nil {
		t.Fatal("expected write error, received nil")
	}
	if creds.AccessToken != "a" {
		t.Error("in-memory credentials should still be updated", cmp.Diff(creds.AccessToken, "a"))
	}
}
