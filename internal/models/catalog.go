package models

// Provider groups the transcription models offered by one engine or vendor.
type Provider struct {
	ID          string               `json:"id"`
	DisplayName string               `json:"displayName"`
	Local       bool                 `json:"local"` // runs on-device, no API key
	Models      []TranscriptionModel `json:"models"`
}

// TranscriptionModel is one selectable entry of the model picker.
type TranscriptionModel struct {
	Key         string   `json:"key"`
	Provider    string   `json:"provider"`
	DisplayName string   `json:"displayName"`
	Languages   []string `json:"languages,omitempty"` // empty means all supported
}
