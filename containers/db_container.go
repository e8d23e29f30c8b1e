package containers

import (
	"context"
	"path/filepath"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	dbImage    = "postgres:16.3-alpine"
	dbName     = "guess_or_mess"
	dbUser     = "gomuser"
	dbPassword = "secret"
)

// The schema every test database starts from, relative to the package under
// test.
var schemaScript = filepath.Join("..", "schema", "schema.sql")

type DBContainer struct {
	container *postgres.PostgresContainer
}

func NewDBContainer() *DBContainer {
	container := mustRun("postgres", func(ctx context.Context) (*postgres.PostgresContainer, error) {
		return postgres.Run(ctx, dbImage,
			postgres.WithDatabase(dbName),
			postgres.WithUsername(dbUser),
			postgres.WithPassword(dbPassword),
			postgres.WithInitScripts(schemaScript),
			// Postgres restarts once after running the init scripts.
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
	})

	return &DBContainer{
		container: container,
	}
}

func (c *DBContainer) Shutdown() {
	mustTerminate("postgres", c.container)
}

func (c *DBContainer) ConnectionString() string {
	return mustConnectionString("postgres", func(ctx context.Context) (string, error) {
		// The container has no TLS configured.
		return c.container.ConnectionString(ctx, "sslmode=disable")
	})
}
