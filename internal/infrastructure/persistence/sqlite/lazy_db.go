package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/bnema/duskmode/internal/application/port"
	"github.com/bnema/duskmode/internal/logging"
)

// LazyDB implements port.DatabaseProvider by opening the database on first
// access. A failed open is retried on the next access, so a store that was
// briefly unavailable recovers without restarting the process.
type LazyDB struct {
	dbPath string
	db     *sql.DB
	mu     sync.Mutex
}

// Compile-time interface check.
var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB creates a new lazy database provider.
func NewLazyDB(dbPath string) *LazyDB {
	return &LazyDB{dbPath: dbPath}
}

// DB returns the database connection, opening it if necessary.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}

	log := logging.FromContext(ctx)
	db, err := NewConnection(ctx, l.dbPath)
	if err != nil {
		log.Warn().Err(err).Str("path", l.dbPath).Msg("lazy database initialization failed")
		return nil, fmt.Errorf("database initialization failed: %w", err)
	}
	l.db = db
	return l.db, nil
}

// Close closes the database connection if it was opened.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized returns true if the database has been opened.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database path.
func (l *LazyDB) Path() string {
	return l.dbPath
}
