package e2e_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

var (
	pgContainer *pgcontainer.PostgresContainer
	pgURL       string
	pgErr       error
	pgOnce      sync.Once
)

// getSharedPostgresURL returns a postgres:// URL for a shared container.
// The container is reused across all tests for performance.
func getSharedPostgresURL(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres e2e tests in short mode")
	}

	pgOnce.Do(func() {
		ctx := context.Background()

		pgContainer, pgErr = pgcontainer.Run(ctx,
			"postgres:18-alpine",
			pgcontainer.WithDatabase("testdb"),
			pgcontainer.WithUsername("testuser"),
			pgcontainer.WithPassword("testpass"),
			pgcontainer.BasicWaitStrategies(),
		)
		if pgErr != nil {
			return
		}

		pgURL, pgErr = pgContainer.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, pgErr, "failed to start postgres container")
	return pgURL
}

func terminatePostgres() {
	if pgContainer != nil {
		_ = testcontainers.TerminateContainer(pgContainer)
	}
}
