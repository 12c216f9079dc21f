package models

// Theme values accepted by the settings editor.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Settings is the user preference record persisted as a single JSON document.
// The JSON field names are the wire format shared with the frontend and with
// exported/imported settings files, so they must not change.
type Settings struct {
	Transcription TranscriptionSettings `json:"transcription"`
	Shortcuts     ShortcutSettings      `json:"shortcuts"`
	Privacy       PrivacySettings       `json:"privacy"`
	UI            UISettings            `json:"ui"`
	UpdatedAt     string                `json:"updatedAt"` // RFC3339; empty string represents zero time
}

type TranscriptionSettings struct {
	Model            string `json:"model"`
	AutoPunctuation  bool   `json:"autoPunctuation"`
	NoiseSuppression bool   `json:"noiseSuppression"`
	Language         string `json:"language"` // BCP 47-ish code, e.g. "en-US"
}

type ShortcutSettings struct {
	PushToTalk      string `json:"pushToTalk"`
	QuickTranscribe string `json:"quickTranscribe"`
}

type PrivacySettings struct {
	Analytics         bool `json:"analytics"`
	ShareCrashReports bool `json:"shareCrashReports"`
}

type UISettings struct {
	Theme           string `json:"theme"` // "system" | "light" | "dark"
	ShowMenuBarIcon bool   `json:"showMenuBarIcon"`
}

// DefaultSettings returns the record used on first run and as the merge base
// for loaded or imported settings.
func DefaultSettings() *Settings {
	return &Settings{
		Transcription: TranscriptionSettings{
			Model:            "whisper-base",
			AutoPunctuation:  true,
			NoiseSuppression: true,
			Language:         "en-US",
		},
		Shortcuts: ShortcutSettings{
			PushToTalk:      "Ctrl+Shift+Space",
			QuickTranscribe: "Ctrl+Shift+T",
		},
		Privacy: PrivacySettings{
			Analytics:         false,
			ShareCrashReports: true,
		},
		UI: UISettings{
			Theme:           ThemeSystem,
			ShowMenuBarIcon: true,
		},
		UpdatedAt: "",
	}
}
