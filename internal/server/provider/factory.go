package provider

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/nutritrack/internal/logging"
	"github.com/dmitrijs2005/nutritrack/internal/server/repositories/repomanager"
)

// Kinds accepted by New.
const (
	KindPostgres = "postgres"
	KindMock     = "mock"
)

// New opens the backend named by kind. For postgres it connects to dsn and
// applies migrations; the returned close func releases the connection.
func New(ctx context.Context, kind, dsn string, opts Options, logger logging.Logger) (Backend, func() error, error) {
	switch kind {
	case KindMock:
		logger.Warn(ctx, "using in-memory identity provider, data is lost on restart")
		return NewMockProvider(opts), func() error { return nil }, nil
	case KindPostgres, "":
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("db open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		rm := repomanager.NewPostgresRepositoryManager()
		if err := rm.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		return NewPostgresProvider(db, rm, opts, logger), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", kind)
	}
}
