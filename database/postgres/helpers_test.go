package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/sagarc03/sqlbridge"
	"github.com/sagarc03/sqlbridge/database"
)

var (
	testDesc      database.Descriptor
	testDescErr   error
	testDescOnce  sync.Once
	testContainer *pgcontainer.PostgresContainer
)

func TestMain(m *testing.M) {
	code := m.Run()
	if testContainer != nil {
		_ = testcontainers.TerminateContainer(testContainer)
	}
	os.Exit(code)
}

// getSharedTestDescriptor starts one container for the package and returns
// the descriptor pointing at it. Each test opens its own connection.
func getSharedTestDescriptor(t *testing.T) database.Descriptor {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container tests in short mode")
	}

	testDescOnce.Do(func() {
		ctx := context.Background()

		pgContainer, err := pgcontainer.Run(ctx,
			"postgres:18-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			pgcontainer.BasicWaitStrategies(),
		)
		if err != nil {
			testDescErr = err
			return
		}
		testContainer = pgContainer

		host, err := pgContainer.Host(ctx)
		if err != nil {
			testDescErr = err
			return
		}
		port, err := pgContainer.MappedPort(ctx, "5432/tcp")
		if err != nil {
			testDescErr = err
			return
		}
		portNum, err := strconv.Atoi(port.Port())
		if err != nil {
			testDescErr = err
			return
		}

		testDesc = database.Descriptor{
			Engine:   sqlbridge.EnginePostgres,
			Host:     host,
			Port:     portNum,
			Path:     "testdb",
			Username: "testuser",
			Password: "testpass",
		}
	})

	require.NoError(t, testDescErr, "failed to start postgres container")
	return testDesc
}

func openTestDB(t *testing.T) *database.DB {
	t.Helper()

	desc := getSharedTestDescriptor(t)
	db, err := database.OpenDescriptor(context.Background(), desc,
		database.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}
