package integration_tests

import (
	"context"
	"path/filepath"
	"testing"

	"murmur/internal/database"
	"murmur/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Init(database.Config{
		Path:     filepath.Join(t.TempDir(), "murmur-test.db"),
		LogLevel: gormlogger.Silent,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestStorageRepository_PutGet_RoundTrip(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))
	ctx := context.Background()

	err := repo.Put(ctx, "murmur.settings", `{"ui":{"theme":"dark"}}`)
	assert.NoError(t, err)

	value, err := repo.Get(ctx, "murmur.settings")
	assert.NoError(t, err)
	assert.Equal(t, `{"ui":{"theme":"dark"}}`, value)
}

func TestStorageRepository_Get_Missing(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), "murmur.settings")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestStorageRepository_Put_Overwrites(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))
	ctx := context.Background()

	assert.NoError(t, repo.Put(ctx, "murmur.settings", `{"v":1}`))
	assert.NoError(t, repo.Put(ctx, "murmur.settings", `{"v":2}`))

	value, err := repo.Get(ctx, "murmur.settings")
	assert.NoError(t, err)
	assert.Equal(t, `{"v":2}`, value)
}

func TestStorageRepository_Delete_RemovesEntry(t *testing.T) {
	repo := repositories.NewStorageRepository(openTestDB(t))
	ctx := context.Background()

	assert.NoError(t, repo.Put(ctx, "murmur.settings", `{}`))
	assert.NoError(t, repo.Delete(ctx, "murmur.settings"))

	_, err := repo.Get(ctx, "murmur.settings")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// deleting an absent key is not an error
	assert.NoError(t, repo.Delete(ctx, "murmur.settings"))
}
