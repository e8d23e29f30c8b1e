package containers

import (
	"context"
	"log"

	"github.com/testcontainers/testcontainers-go"
)

// Containers are started once per test package and live for the whole run,
// so any failure to manage one ends the tests.

func mustRun[C testcontainers.Container](name string, run func(ctx context.Context) (C, error)) C {
	c, err := run(context.Background())
	if err != nil {
		log.Fatalf("error starting %s container: %v", name, err)
	}
	return c
}

func mustTerminate(name string, c testcontainers.Container) {
	if err := c.Terminate(context.Background()); err != nil {
		log.Fatalf("error terminating %s container: %v", name, err)
	}
}

func mustConnectionString(name string, get func(ctx context.Context) (string, error)) string {
	connStr, err := get(context.Background())
	if err != nil {
		log.Fatalf("error getting %s connection string: %v", name, err)
	}
	return connStr
}
