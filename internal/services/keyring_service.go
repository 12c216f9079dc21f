package services

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// keyringServiceName scopes Murmur's entries in the OS keychain.
const keyringServiceName = "murmur"

// KeyringService stores API keys for cloud transcription providers in the OS
// keychain. Keys never enter the settings record, so exported settings files
// stay secret-free.
type KeyringService struct{}

func NewKeyringService() *KeyringService {
	return &KeyringService{}
}

func (s *KeyringService) StoreAPIKey(provider, apiKey string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	if apiKey == "" {
		return errors.New("API key is empty")
	}

	return keyring.Set(keyringServiceName, provider, apiKey)
}

func (s *KeyringService) GetAPIKey(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	return keyring.Get(keyringServiceName, provider)
}

func (s *KeyringService) DeleteAPIKey(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}

	err := keyring.Delete(keyringServiceName, provider)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

// HasAPIKey reports whether a key is present without exposing it to the
// frontend.
func (s *KeyringService) HasAPIKey(provider string) bool {
	if provider == "" {
		return false
	}
	_, err := keyring.Get(keyringServiceName, provider)
	return err == nil
}
