package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/telagraphic/sfx-board/internal/config"
)

// FindClipFiles lists the clip filenames in dir, in filename order. Only
// regular entries with the literal .mp3 suffix count; subdirectories are
// skipped even when their name carries the suffix.
func FindClipFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan clips: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), config.ClipExtension) {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}
