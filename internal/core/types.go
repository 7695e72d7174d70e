package core

// Clip is one catalog entry, pairing a display name with a file path
// relative to the board root. File is the uniqueness key.
type Clip struct {
	Name string `json:"name"`
	File string `json:"file"`
}

// Catalog is the JSON document tracking known clips.
type Catalog struct {
	Clips []Clip `json:"clips"`
}

// SyncResult summarizes one reconciliation run.
type SyncResult struct {
	CatalogPath string
	Added       []Clip
	Total       int
}
