// Package filestore keeps console state in a local JSON file, one string
// value per storage key.
package filestore

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"
)

// CredentialRepository is an implementation of console.CredentialRepository.
type CredentialRepository struct {
	mu     sync.Mutex
	logger log.Logger
	path   string
	key    string
}

// Read returns the value stored under the repository's key, or nil
// when neither the file nor the key exists.
func (r *CredentialRepository) Read(ctx context.Context) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		return nil, err
	}

	value, ok := values[r.key]
	if !ok {
		return nil, nil
	}
	return []byte(value), nil
}

// Write replaces the value stored under the repository's key. Other
// keys in the file are kept.
func (r *CredentialRepository) Write(ctx context.Context, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	values, err := r.load()
	if err != nil {
		level.Warn(r.logger).Log("msg", "replacing unreadable storage file", "path", r.path, "error", err)
		values = map[string]string{}
	}
	values[r.key] = string(value)

	if err = r.save(values); err != nil {
		return err
	}

	level.Debug(r.logger).Log("msg", "credentials written", "path", r.path, "key", r.key)
	return nil
}

func (r *CredentialRepository) load() (map[string]string, error) {
	data, err := ioutil.ReadFile(r.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.path)
	}

	values := map[string]string{}
	if err = json.Unmarshal(data, &values); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", r.path)
	}
	return values, nil
}

func (r *CredentialRepository) save(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "failed to create storage directory")
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode storage file")
	}

	tmp := r.path + ".tmp"
	if err = ioutil.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", tmp)
	}
	if err = os.Rename(tmp, r.path); err != nil {
		return errors.Wrapf(err, "failed to replace %s", r.path)
	}
	return nil
}
