package core

import (
	"path"
	"path/filepath"

	"github.com/telagraphic/sfx-board/internal/inputs"
)

// Sync reconciles the catalog with the clips directory: every .mp3 on disk
// that has no catalog record gets one appended, then the catalog is written
// back. Existing records are never modified, removed, or reordered.
func Sync(userInput inputs.UserInput) (SyncResult, error) {
	catalog, err := LoadCatalog(userInput.CatalogPath)
	if err != nil {
		return SyncResult{}, err
	}

	files, err := FindClipFiles(userInput.ClipsDir)
	if err != nil {
		return SyncResult{}, err
	}

	added := Reconcile(catalog, files, userInput)

	if err := WriteCatalog(userInput.CatalogPath, catalog); err != nil {
		return SyncResult{}, err
	}

	return SyncResult{
		CatalogPath: userInput.CatalogPath,
		Added:       added,
		Total:       len(catalog.Clips),
	}, nil
}

// Reconcile appends a record for each scanned filename whose relative path
// is not already recorded, and returns the appended clips in scan order.
// The relative path always joins with forward slashes; catalog entries are
// board-relative paths, not platform paths.
func Reconcile(catalog *Catalog, files []string, userInput inputs.UserInput) []Clip {
	existing := make(map[string]bool, len(catalog.Clips))
	for _, clip := range catalog.Clips {
		existing[clip.File] = true
	}

	var added []Clip
	for _, filename := range files {
		relative := path.Join(userInput.Prefix, filename)
		if existing[relative] {
			continue
		}

		name := clipName(filename)
		if userInput.TagNames {
			name = clipNameFromTags(filepath.Join(userInput.ClipsDir, filename), filename)
		}

		clip := Clip{Name: name, File: relative}
		catalog.Clips = append(catalog.Clips, clip)
		added = append(added, clip)
		existing[relative] = true
	}
	return added
}
