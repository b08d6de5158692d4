//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/harborwind/clientstate/internal/model"
	repo "github.com/harborwind/clientstate/internal/store/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "clientstate_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/clientstate_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestStateRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	store := repo.NewStateRepository(conn)

	t.Run("round_trip", func(t *testing.T) {
		_, err := store.Get(ctx, "autopilotPaused_1234")
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, store.Set(ctx, "autopilotPaused_1234", "true"))

		value, err := store.Get(ctx, "autopilotPaused_1234")
		require.NoError(t, err)
		require.Equal(t, "true", value)

		require.NoError(t, store.Set(ctx, "autopilotPaused_1234", "false"))

		value, err = store.Get(ctx, "autopilotPaused_1234")
		require.NoError(t, err)
		require.Equal(t, "false", value)
	})

	t.Run("per_user_keys_coexist", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "autopilotPaused_5678", "true"))

		a, err := store.Get(ctx, "autopilotPaused_1234")
		require.NoError(t, err)
		b, err := store.Get(ctx, "autopilotPaused_5678")
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})

	t.Run("keys_snapshot", func(t *testing.T) {
		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.Contains(t, keys, "autopilotPaused_1234")
		assert.Contains(t, keys, "autopilotPaused_5678")
	})

	t.Run("remove_idempotent", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "autopilotPaused_5678"))

		_, err := store.Get(ctx, "autopilotPaused_5678")
		require.ErrorIs(t, err, model.ErrNotFound)

		require.NoError(t, store.Remove(ctx, "autopilotPaused_5678"))
	})
}
