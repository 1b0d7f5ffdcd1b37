package filestore

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCredentialRepository_Read(t *testing.T) {
	tt := []struct {
		name     string
		contents string
		value    []byte
		hasError bool
	}{
		{
			name:     "Missing file",
			contents: "",
			value:    nil,
		},
		{
			name:     "Missing key",
			contents: `{"another-key":"value"}`,
			value:    nil,
		},
		{
			name:     "Stored key",
			contents: `{"microbank-frontend-tokens":"{\"accessToken\":\"a\"}"}`,
			value:    []byte(`{"accessToken":"a"}`),
		},
		{
			name:     "Corrupt file",
			contents: `{"microbank-frontend-tokens":`,
			hasError: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tokens.json")
			if tc.contents != "" {
				if err := ioutil.WriteFile(path, []byte(tc.contents), 0o600); err != nil {
					t.Fatal("failed to seed storage file:", err)
				}
			}

			repo := NewCredentialRepository(path)
			value, err := repo.Read(context.Background())
			if tc.hasError && err == nil {
				t.Fatal("expected error, received nil")
			}
			if !tc.hasError && err != nil {
				t.Fatal("expected nil error:", err)
			}
			if !cmp.Equal(value, tc.value) {
				t.Error("value does not match", cmp.Diff(string(value), string(tc.value)))
			}
		})
	}
}

func TestCredentialRepository_Write(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.json")

	repo := NewCredentialRepository(path)
	other := NewCredentialRepository(path, WithKey("another-key"))

	if err := other.Write(ctx, []byte("kept")); err != nil {
		t.Fatal("failed to write value:", err)
	}

	for _, value := range []string{`{"accessToken":"a"}`, `{"accessToken":"b"}`} {
		if err := repo.Write(ctx, []byte(value)); err != nil {
			t.Fatal("failed to write value:", err)
		}
		got, err := NewCredentialRepository(path).Read(ctx)
		if err != nil {
			t.Fatal("failed to read value:", err)
		}
		if string(got) != value {
			t.Error("value does not match", cmp.Diff(string(got), value))
		}
	}

	kept, err := other.Read(ctx)
	if err != nil {
		t.Fatal("failed to read value:", err)
	}
	if string(kept) != "kept" {
		t.Error("other keys should be kept", cmp.Diff(string(kept), "kept"))
	}
}

func TestCredentialRepository_WriteReplacesCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tokens.json")
	if err := ioutil.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatal("failed to seed storage file:", err)
	}

	repo := NewCredentialRepository(path)
	if err := repo.Write(ctx, []byte(`{"accessToken":"a"}`)); err != nil {
		t.Fatal("failed to write value:", err)
	}

	value, err := repo.Read(ctx)
	if err != nil {
		t.Fatal("failed to read value:", err)
	}
	if string(value) != `{"accessToken":"a"}` {
		t.Error("value does not match", string(value))
	}
}
