package core

import (
	"os"
	"strings"

	"github.com/dhowden/tag"
	"github.com/telagraphic/sfx-board/internal/config"
)

// clipName derives a display name from a clip filename by stripping the
// extension.
func clipName(filename string) string {
	return strings.TrimSuffix(filename, config.ClipExtension)
}

// clipNameFromTags prefers the embedded ID3 title. Files without a readable,
// non-empty title fall back to the filename-derived name.
func clipNameFromTags(path, filename string) string {
	f, err := os.Open(path)
	if err != nil {
		return clipName(filename)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil || meta.Title() == "" {
		return clipName(filename)
	}
	return meta.Title()
}
