package version

// App identity shown on the About panel and used for export file naming.
const (
	Name    = "Murmur"
	Tagline = "Dictation that stays on your desk."
)

// Version and Commit are overridden at release time via
// -ldflags "-X murmur/internal/version.Version=...".
var (
	Version = "0.4.1"
	Commit  = "dev"
)
