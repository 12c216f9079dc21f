package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"murmur/internal/models"
)

// ErrNotFound reports that no entry exists for the requested key.
var ErrNotFound = errors.New("storage entry not found")

// StorageRepository is the app-local key-value store. Put is a full overwrite
// of the value at key; there are no partial writes.
type StorageRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type storageRepository struct {
	db *gorm.DB
}

func NewStorageRepository(db *gorm.DB) StorageRepository {
	return &storageRepository{db: db}
}

func (r *storageRepository) Get(ctx context.Context, key string) (string, error) {
	var entry models.StorageEntry
	if err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}
	return entry.Value, nil
}

func (r *storageRepository) Put(ctx context.Context, key, value string) error {
	entry := models.StorageEntry{Key: key, Value: value}
	return r.db.WithContext(ctx).Save(&entry).Error
}

func (r *storageRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&models.StorageEntry{}, "key = ?", key).Error
}
