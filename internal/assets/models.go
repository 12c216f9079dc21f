package assets

import _ "embed"

// CatalogData holds the raw JSON catalog of transcription providers and models.
//
//go:embed models.json
var CatalogData []byte
