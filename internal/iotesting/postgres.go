package iotesting

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/gnames/protdb/pkg/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresImage is the image of the integration test server.
const PostgresImage = "postgres:16-alpine"

type pgContainer struct {
	container testcontainers.Container
	host      string
	port      int
}

var (
	sharedPG     *pgContainer
	sharedPGOnce sync.Once
	sharedPGErr  error
)

// PostgresConfig returns a configuration pointing to a PostgreSQL
// container shared by all tests of a package run. Tests are skipped in
// short mode or when the container cannot be started (no Docker).
// The database is not cleaned, callers recreate the schema.
func PostgresConfig(t *testing.T) *config.Config {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)

	sharedPGOnce.Do(func() {
		sharedPG, sharedPGErr = recoverStart(startPostgres)
	})
	if sharedPGErr != nil {
		t.Skipf("PostgreSQL container is not available: %v", sharedPGErr)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptDatabaseType(config.Postgres),
		config.OptDatabaseHost(sharedPG.host),
		config.OptDatabasePort(sharedPG.port),
		config.OptDatabaseUser("postgres"),
		config.OptDatabasePassword("postgres"),
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptDatabaseSSLMode("disable"),
	})
	return cfg
}

// recoverStart turns a panic of the container provider into an error.
func recoverStart(
	start func() (*pgContainer, error),
) (res *pgContainer, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("container provider failed: %v", r)
		}
	}()
	return start()
}

func startPostgres() (*pgContainer, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        PostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       TestDatabaseName,
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		// the server restarts once after init scripts
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	portNum, err := strconv.Atoi(port.Port())
	if err != nil {
		return nil, fmt.Errorf("bad container port %q: %w", port.Port(), err)
	}

	return &pgContainer{
		container: container,
		host:      host,
		port:      portNum,
	}, nil
}
