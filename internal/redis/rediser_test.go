package redis

import (
	"context"
	"testing"
	"time"

	redislib "github.com/go-redis/redis/v8"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// memRediser is an in-memory Rediser.
type memRediser struct {
	values map[string]string
	err    error
	ttl    map[string]time.Duration
}

func (m *memRediser) Get(ctx context.Context, key string) *redislib.StringCmd {
	if m.err != nil {
		return redislib.NewStringResult("", m.err)
	}
	v, ok := m.values[key]
	if !ok {
		return redislib.NewStringResult("", redislib.Nil)
	}
	return redislib.NewStringResult(v, nil)
}

func (m *memRediser) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redislib.StatusCmd {
	if m.err != nil {
		return redislib.NewStatusResult("", m.err)
	}
	m.values[key] = string(value.([]byte))
	m.ttl[key] = expiration
	return redislib.NewStatusResult("OK", nil)
}

func TestCredentialRepository_InMemory(t *testing.T) {
	tt := []struct {
		name     string
		stored   map[string]string
		err      error
		value    []byte
		hasError bool
	}{
		{
			name:   "Missing key",
			stored: map[string]string{},
			value:  nil,
		},
		{
			name:   "Stored key",
			stored: map[string]string{"console": `{"accessToken":"a"}`},
			value:  []byte(`{"accessToken":"a"}`),
		},
		{
			name:     "Command failure",
			stored:   map[string]string{},
			err:      errors.New("WRONGTYPE Operation against a key holding the wrong kind of value"),
			hasError: true,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			db := &memRediser{values: tc.stored, ttl: map[string]time.Duration{}, err: tc.err}
			repo := NewCredentialRepository(db, WithKey("console"))

			value, err := repo.Read(context.Background())
			if tc.hasError {
				if err == nil {
					t.Fatal("expected error, received nil")
				}
				return
			}
			if err != nil {
				t.Fatal("expected nil error:", err)
			}
			if !cmp.Equal(value, tc.value) {
				t.Error("value does not match", cmp.Diff(string(value), string(tc.value)))
			}
		})
	}
}

func TestCredentialRepository_InMemoryWrite(t *testing.T) {
	db := &memRediser{values: map[string]string{}, ttl: map[string]time.Duration{}}
	repo := NewCredentialRepository(db, WithKey("console"))

	if err := repo.Write(context.Background(), []byte(`{"refreshToken":"r"}`)); err != nil {
		t.Fatal("failed to write value:", err)
	}
	if db.values["console"] != `{"refreshToken":"r"}` {
		t.Error("value does not match", cmp.Diff(db.values["console"], `{"refreshToken":"r"}`))
	}
	if db.ttl["console"] != 0 {
		t.Errorf("value should not expire, got ttl %v", db.ttl["console"])
	}
}
