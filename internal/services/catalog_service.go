package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"murmur/internal/assets"
	"murmur/internal/models"
)

// CatalogService exposes the read-only transcription model catalog shipped
// with the app. The settings UI uses it to populate the model picker.
type CatalogService interface {
	Startup(ctx context.Context) error
	ListProviders() []models.Provider
	ListModels() []models.TranscriptionModel
	GetModel(key string) (*models.TranscriptionModel, error)
}

type catalogService struct {
	ctx context.Context

	mu            sync.RWMutex
	providerOrder []string
	providers     map[string]models.Provider
	models        map[string]models.TranscriptionModel
}

type catalogFile struct {
	Providers []models.Provider `json:"providers"`
}

func NewCatalogService() CatalogService {
	return &catalogService{
		providers: make(map[string]models.Provider),
		models:    make(map[string]models.TranscriptionModel),
	}
}

func (s *catalogService) Startup(ctx context.Context) error {
	s.ctx = ctx

	var parsed catalogFile
	if err := json.Unmarshal(assets.CatalogData, &parsed); err != nil {
		return fmt.Errorf("parse model catalog asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.providerOrder = make([]string, 0, len(parsed.Providers))
	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}

		for i := range provider.Models {
			provider.Models[i].Provider = providerID
			mdl := provider.Models[i]
			if key := strings.TrimSpace(mdl.Key); key != "" {
				s.models[key] = mdl
			}
		}

		s.providerOrder = append(s.providerOrder, providerID)
		s.providers[providerID] = provider
	}

	return nil
}

func (s *catalogService) ListProviders() []models.Provider {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Provider, 0, len(s.providerOrder))
	for _, id := range s.providerOrder {
		out = append(out, s.providers[id])
	}
	return out
}

func (s *catalogService) ListModels() []models.TranscriptionModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TranscriptionModel, 0, len(s.models))
	for _, id := range s.providerOrder {
		out = append(out, s.providers[id].Models...)
	}
	return out
}

func (s *catalogService) GetModel(key string) (*models.TranscriptionModel, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("model key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mdl, ok := s.models[key]
	if !ok {
		return nil, fmt.Errorf("model %s not found", key)
	}
	return &mdl, nil
}
