// Package testhelpers starts a throwaway Postgres for the audit trail and
// applies the repo's migrations to it.
package testhelpers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/DanielPopoola/avi-gateway/internal/config"
	"github.com/DanielPopoola/avi-gateway/internal/infrastructure/persistence/postgres"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	auditImage    = "postgres:16-alpine"
	auditDatabase = "avi_audit"
	auditUser     = "avi"
	auditPassword = "avi-test"
)

// AuditDatabase is a migrated lookup_audit store backed by a container.
type AuditDatabase struct {
	Container testcontainers.Container
	DB        *postgres.DB
	Config    *config.DatabaseConfig
}

// SetupTestDatabase starts the container, connects through the production
// pool settings and applies every up migration in name order.
func SetupTestDatabase(t *testing.T) *AuditDatabase {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        auditImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_DB":       auditDatabase,
				"POSTGRES_USER":     auditUser,
				"POSTGRES_PASSWORD": auditPassword,
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err, "start %s", auditImage)

	dbConfig, err := auditConfig(ctx, container)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := postgres.Connect(ctx, dbConfig, logger)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(ctx, db))

	return &AuditDatabase{Container: container, DB: db, Config: dbConfig}
}

func auditConfig(ctx context.Context, container testcontainers.Container) (*config.DatabaseConfig, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	return &config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            auditUser,
		Password:        auditPassword,
		Name:            auditDatabase,
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 10 * time.Minute,
		ConnMaxIdleTime: time.Minute,
	}, nil
}

func (d *AuditDatabase) Cleanup(t *testing.T) {
	t.Helper()
	d.DB.Close()
	require.NoError(t, d.Container.Terminate(context.Background()))
}

// CleanTables empties the audit trail between tests.
func (d *AuditDatabase) CleanTables(t *testing.T) {
	t.Helper()
	_, err := d.DB.Pool.Exec(context.Background(), "TRUNCATE TABLE lookup_audit")
	require.NoError(t, err)
}

// CountAudits returns how many audit rows have the given outcome. An empty
// outcome counts every row.
func (d *AuditDatabase) CountAudits(t *testing.T, outcome string) int {
	t.Helper()

	var n int
	err := d.DB.Pool.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM lookup_audit WHERE $1::text = '' OR outcome = $1::text", outcome,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

// moduleRoot walks up from this file to the directory holding go.mod.
func moduleRoot() (string, error) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("caller information unavailable")
	}
	for dir := filepath.Dir(file); ; dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		if parent := filepath.Dir(dir); parent == dir {
			return "", fmt.Errorf("no go.mod above %s", file)
		}
	}
}

func applyMigrations(ctx context.Context, db *postgres.DB) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}

	files, err := filepath.Glob(filepath.Join(root, "db", "migrations", "*.up.sql"))
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations under %s", root)
	}
	sort.Strings(files)

	for _, file := range files {
		sql, err := os.ReadFile(file) //nolint:gosec // path built from the module root
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(file), err)
		}
		if _, err := db.Pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}
