// Package pgtest runs a disposable PostgreSQL container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 30 * time.Second
)

// Start launches a container and returns its connection string and a stop
// func. stop is never nil, so callers can defer it unconditionally.
func Start(ctx context.Context) (connString string, stop func(), err error) {
	stop = func() {}

	// testcontainers panics when no docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			connString, err = "", fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", stop, fmt.Errorf("start postgres container: %w", err)
	}
	stop = func() {
		if err := container.Terminate(context.Background()); err != nil {
			fmt.Printf("pgtest: terminate container: %v\n", err)
		}
	}

	connString, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		stop()
		return "", func() {}, fmt.Errorf("container connection string: %w", err)
	}
	return connString, stop, nil
}

// Skip skips t in -short mode or when no container came up.
func Skip(t testing.TB, available bool) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if !available {
		t.Skip("Skipping integration test: database not available")
	}
}
