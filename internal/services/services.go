package services

import (
	"gorm.io/gorm"

	"murmur/internal/repositories"
)

// DbServices aggregates the domain services backed by the database.
type DbServices struct {
	Settings SettingsService
}

// NewDbServices constructs the service container using repositories backed by db.
func NewDbServices(db *gorm.DB) *DbServices {
	storageRepo := repositories.NewStorageRepository(db)

	return &DbServices{
		Settings: NewSettingsService(storageRepo),
	}
}
