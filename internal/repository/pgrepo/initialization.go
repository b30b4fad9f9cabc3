package pgrepo

import (
	"context"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	maxConnectAttempts = 30
	retryInterval      = 3 * time.Second
)

// Connect устанавливает соединение с postgres с ретраями и накатывает миграции.
// База может подниматься параллельно с приложением, поэтому ошибки соединения не фатальны
// до исчерпания maxConnectAttempts.
func Connect(ctx context.Context, migrationsDir, dsn string, l *logrus.Logger) (*pgxpool.Pool, error) {
	var conn *pgxpool.Pool
	var connErr error

	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "init postgres connection")
		}
		conn, connErr = newPostgresConnection(ctx, dsn)
		if connErr == nil {
			break
		}
		l.WithError(connErr).
			WithField("CurrentAttempt", attempt).
			Warnf("init postgres connection error, retrying in %.f seconds", retryInterval.Seconds())
		time.Sleep(retryInterval)
	}
	if connErr != nil {
		return nil, errors.Wrapf(connErr, "init postgres connection after %d attempts", maxConnectAttempts)
	}

	if err := postgresMigrate(migrationsDir, dsn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func newPostgresConnection(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	poolConfig, confErr := pgxpool.ParseConfig(dsn)
	if confErr != nil {
		return nil, errors.Wrap(confErr, "parse postgres config")
	}
	pool, poolErr := pgxpool.NewWithConfig(ctx, poolConfig)
	if poolErr != nil {
		return nil, errors.Wrap(poolErr, "failed to create pool")
	}

	if pingErr := pool.Ping(ctx); pingErr != nil {
		pool.Close()
		return nil, errors.Wrap(pingErr, "failed to connect to postgres")
	}

	return pool, nil
}

func postgresMigrate(dir string, dsn string) error {
	m, mErr := migrate.New("file://"+dir, dsn)
	if mErr != nil {
		return errors.Wrap(mErr, "failed to create migrate instance")
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "failed to migrate schema")
	}
	return nil
}
