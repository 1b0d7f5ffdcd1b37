package postgres

import (
	"database/sql"

	"github.com/go-kit/kit/log"
)

// TestClient returns a client with test configuration.
func TestClient(db *sql.DB, options ...ConfigOption) *Client {
	options = append([]ConfigOption{
		WithLogger(log.NewNopLogger()),
		WithDB(db),
	}, options...)
	return NewClient(options...)
}
