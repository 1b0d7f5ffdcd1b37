package bankconsole

// Schema contains sql commands to setup the database to work for the console's
// Postgres storage backend.
const Schema = `
CREATE TABLE IF NOT EXISTS console_storage (
	key VARCHAR(255) PRIMARY KEY,
	value TEXT NOT NULL,
	created_at TIMESTAMP WITH TIME ZONE DEFAULT current_timestamp,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT current_timestamp
);
`
