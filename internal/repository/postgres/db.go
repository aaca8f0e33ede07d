package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"eventhub/internal/domain"
)

// connectTimeout bounds the first connection attempt so a hung database
// surfaces as ErrConnection instead of stalling the request.
const connectTimeout = 5 * time.Second

// DBProvider yields the shared connection pool, establishing it first if
// it does not exist yet.
type DBProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// Connector opens the database connection lazily on first use and reuses
// it for the life of the process. Concurrent first-time callers share a
// single connection attempt instead of opening duplicate pools.
type Connector struct {
	dsn  string
	once sync.Once
	db   *sql.DB
	err  error
}

func NewConnector(dsn string) *Connector {
	return &Connector{dsn: dsn}
}

// DB returns the shared pool, opening and pinging it on the first call.
// Failures are reported wrapped in domain.ErrConnection.
func (c *Connector) DB(ctx context.Context) (*sql.DB, error) {
	c.once.Do(func() {
		db, err := sql.Open("postgres", c.dsn)
		if err != nil {
			c.err = fmt.Errorf("%w: %v", domain.ErrConnection, err)
			return
		}
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		if err := db.PingContext(pingCtx); err != nil {
			db.Close()
			c.err = fmt.Errorf("%w: %v", domain.ErrConnection, err)
			return
		}
		c.db = db
	})
	return c.db, c.err
}

// staticProvider wraps an already-open pool. Used by tests and by the
// migration runner, which manage the connection themselves.
type staticProvider struct {
	db *sql.DB
}

func (s staticProvider) DB(ctx context.Context) (*sql.DB, error) {
	return s.db, nil
}

// Static returns a DBProvider over an existing connection pool.
func Static(db *sql.DB) DBProvider {
	return staticProvider{db: db}
}
