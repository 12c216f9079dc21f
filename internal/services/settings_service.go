package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"murmur/internal/logger"
	"murmur/internal/models"
	"murmur/internal/repositories"
)

// SettingsKey is the fixed storage key holding the settings JSON document.
const SettingsKey = "murmur.settings"

// ErrInvalidFormat reports that imported content does not parse as a JSON
// object.
var ErrInvalidFormat = errors.New("settings content is not a JSON object")

// SettingsService owns the canonical settings record. Load and Persist absorb
// storage faults: both leave the service with a usable record and report the
// recovered fault as an error value, so callers decide whether to surface it.
type SettingsService interface {
	Startup(ctx context.Context)
	// Current returns a copy of the in-memory snapshot.
	Current() *models.Settings
	// Load reads the stored record and shallow-merges it over defaults. The
	// returned record is always usable; a non-nil error reports a recovered
	// read or decode fault.
	Load(ctx context.Context) (*models.Settings, error)
	// Persist replaces the snapshot and overwrites the stored record
	// wholesale. On write failure the in-memory record stays authoritative
	// and the error reports the fault.
	Persist(ctx context.Context, settings *models.Settings) error
	// Update replaces the record from the settings editor, validating the
	// theme and stamping updatedAt. Returns nil only on validation failure.
	Update(ctx context.Context, settings models.Settings) (*models.Settings, error)
	// Reset rebuilds defaults with a fresh updatedAt and persists them. The
	// record is returned even when the write fails.
	Reset(ctx context.Context) (*models.Settings, error)
	// ImportFrom parses raw as a JSON object, shallow-merges it over defaults
	// and stamps updatedAt. It does not persist; callers do. On parse failure
	// it returns ErrInvalidFormat and leaves all state untouched.
	ImportFrom(raw string) (*models.Settings, error)
	// Export renders the current snapshot as pretty-printed JSON.
	Export() (string, error)
}

type settingsService struct {
	storage repositories.StorageRepository
	now     func() time.Time

	mu      sync.RWMutex
	current models.Settings
}

func NewSettingsService(storage repositories.StorageRepository) SettingsService {
	return NewSettingsServiceWithClock(storage, time.Now)
}

// NewSettingsServiceWithClock injects the timestamp source so tests can pin
// updatedAt values.
func NewSettingsServiceWithClock(storage repositories.StorageRepository, now func() time.Time) SettingsService {
	return &settingsService{
		storage: storage,
		now:     now,
		current: *models.DefaultSettings(),
	}
}

func (s *settingsService) Startup(ctx context.Context) {
	if _, err := s.Load(ctx); err != nil {
		logger.For("settings").Warn().Err(err).Msg("recovered to defaults during startup load")
	}
}

func (s *settingsService) Current() *models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := s.current
	return &snapshot
}

func (s *settingsService) setCurrent(settings *models.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = *settings
}

func (s *settingsService) Load(ctx context.Context) (*models.Settings, error) {
	raw, err := s.storage.Get(ctx, SettingsKey)
	if err != nil {
		defaults := models.DefaultSettings()
		s.setCurrent(defaults)
		if errors.Is(err, repositories.ErrNotFound) {
			return defaults, nil
		}
		logger.For("settings").Warn().Err(err).Msg("settings unreadable, falling back to defaults")
		return defaults, fmt.Errorf("service: load settings: %w", err)
	}

	merged, err := mergeOverDefaults([]byte(raw))
	if err != nil {
		defaults := models.DefaultSettings()
		s.setCurrent(defaults)
		logger.For("settings").Warn().Err(err).Msg("stored settings malformed, falling back to defaults")
		return defaults, fmt.Errorf("service: decode stored settings: %w", err)
	}

	s.setCurrent(merged)
	return merged, nil
}

func (s *settingsService) Persist(ctx context.Context, settings *models.Settings) error {
	if settings == nil {
		return errors.New("settings are required")
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("service: encode settings: %w", err)
	}

	s.setCurrent(settings)

	if err := s.storage.Put(ctx, SettingsKey, string(data)); err != nil {
		logger.For("settings").Warn().Err(err).Msg("settings write failed, in-memory record stays authoritative")
		return fmt.Errorf("service: persist settings: %w", err)
	}
	return nil
}

func (s *settingsService) Update(ctx context.Context, settings models.Settings) (*models.Settings, error) {
	switch settings.UI.Theme {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
	default:
		return nil, errors.New("theme must be 'system', 'light', or 'dark'")
	}

	settings.UpdatedAt = s.timestamp()
	err := s.Persist(ctx, &settings)
	return &settings, err
}

func (s *settingsService) Reset(ctx context.Context) (*models.Settings, error) {
	fresh := models.DefaultSettings()
	fresh.UpdatedAt = s.timestamp()
	err := s.Persist(ctx, fresh)
	return fresh, err
}

func (s *settingsService) ImportFrom(raw string) (*models.Settings, error) {
	merged, err := mergeOverDefaults([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	merged.UpdatedAt = s.timestamp()
	return merged, nil
}

func (s *settingsService) Export() (string, error) {
	data, err := json.MarshalIndent(s.Current(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("service: encode settings: %w", err)
	}
	return string(data), nil
}

func (s *settingsService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

var jsonNull = []byte("null")

// mergeOverDefaults combines a raw JSON document with the default record. The
// merge is shallow: a top-level group present in the document replaces the
// default group wholesale (fields missing inside it take zero values), absent
// or null groups stay at defaults, unknown keys are dropped. A group that
// fails to decode keeps its defaults rather than aborting the merge.
func mergeOverDefaults(raw []byte) (*models.Settings, error) {
	var groups map[string]json.RawMessage
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, err
	}

	merged := models.DefaultSettings()
	mergeGroup(groups, "transcription", &merged.Transcription)
	mergeGroup(groups, "shortcuts", &merged.Shortcuts)
	mergeGroup(groups, "privacy", &merged.Privacy)
	mergeGroup(groups, "ui", &merged.UI)
	mergeGroup(groups, "updatedAt", &merged.UpdatedAt)
	return merged, nil
}

func mergeGroup[T any](groups map[string]json.RawMessage, key string, dst *T) {
	raw, ok := groups[key]
	if !ok || bytes.Equal(raw, jsonNull) {
		return
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logger.For("settings").Debug().Err(err).Str("group", key).Msg("dropping undecodable settings group")
		return
	}
	*dst = decoded
}
