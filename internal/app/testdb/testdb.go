package testdb

import (
	"path/filepath"
	"testing"

	"marketplace/internal/app/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// New открывает репозиторий на временной SQLite-базе с применёнными миграциями.
// Одно соединение: все вызовы внутри транзакции обязаны идти через её ctx
func New(t *testing.T) *repository.Repository {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	repo, err := repository.Open(sqlite.Open("file:" + path + "?_foreign_keys=on"))
	require.NoError(t, err)

	sqlDB, err := repo.DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repo.Migrate())
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}
