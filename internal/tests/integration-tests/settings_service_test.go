package integration_tests

import (
	"context"
	"testing"

	"murmur/internal/models"
	"murmur/internal/repositories"
	"murmur/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_PersistLoad_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewStorageRepository(db)
	ctx := context.Background()

	record := models.DefaultSettings()
	record.Transcription.Model = "whisper-small"
	record.UI.Theme = models.ThemeDark
	record.UpdatedAt = "2026-03-14T09:26:53Z"

	writer := services.NewSettingsService(repo)
	assert.NoError(t, writer.Persist(ctx, record))

	// a second service over the same store sees the written record
	reader := services.NewSettingsService(repo)
	loaded, err := reader.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestSettingsService_Load_CorruptStore_RecoversToDefaults(t *testing.T) {
	db := openTestDB(t)
	repo := repositories.NewStorageRepository(db)
	ctx := context.Background()

	assert.NoError(t, repo.Put(ctx, services.SettingsKey, "<<<corrupt>>>"))

	service := services.NewSettingsService(repo)
	loaded, err := service.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, models.DefaultSettings(), loaded)

	// a reset writes clean defaults back over the corrupt value
	fresh, err2 := service.Reset(ctx)
	assert.NoError(t, err2)

	reloaded, err := service.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fresh, reloaded)
}
