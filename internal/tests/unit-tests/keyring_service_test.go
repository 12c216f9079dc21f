package unit_tests

import (
	"testing"

	"murmur/internal/services"

	"github.com/stretchr/testify/assert"
)

// Only the validation paths run here; anything past them talks to the
// real OS keychain.

func TestKeyringService_StoreAPIKey_MissingProvider(t *testing.T) {
	service := services.NewKeyringService()

	err := service.StoreAPIKey("", "sk-something")
	assert.Equal(t, "provider is required", err.Error())
}

func TestKeyringService_StoreAPIKey_MissingKey(t *testing.T) {
	service := services.NewKeyringService()

	err := service.StoreAPIKey("deepgram", "")
	assert.Equal(t, "API key is empty", err.Error())
}

func TestKeyringService_GetAPIKey_MissingProvider(t *testing.T) {
	service := services.NewKeyringService()

	_, err := service.GetAPIKey("")
	assert.Equal(t, "provider is required", err.Error())
}

func TestKeyringService_DeleteAPIKey_MissingProvider(t *testing.T) {
	service := services.NewKeyringService()

	err := service.DeleteAPIKey("")
	assert.Equal(t, "provider is required", err.Error())
}

func TestKeyringService_HasAPIKey_MissingProvider(t *testing.T) {
	service := services.NewKeyringService()

	assert.False(t, service.HasAPIKey(""))
}
