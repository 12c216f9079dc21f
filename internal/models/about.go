package models

// AboutInfo is the identity block shown on the About panel.
type AboutInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Tagline string `json:"tagline"`
	OS      string `json:"os"`
	Dev     bool   `json:"dev"`
}
