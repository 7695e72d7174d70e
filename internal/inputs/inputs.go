package inputs

import (
	"log"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/telagraphic/sfx-board/internal/config"
)

type UserInput struct {
	CatalogPath string
	ClipsDir    string
	Prefix      string
	TagNames    bool
}

// ParseFlags returns parsed CLI flags and arguments
func ParseFlags() UserInput {
	var catalogPath, clipsDir, prefix string
	var tagNames bool

	pflag.StringVarP(&catalogPath, "catalog", "c", "", "catalog file (default <root>/"+config.DefaultCatalogFile+")")
	pflag.StringVarP(&clipsDir, "clips", "d", "", "clips directory (default <root>/"+config.DefaultClipsDir+")")
	pflag.StringVar(&prefix, "prefix", "", "path prefix for catalog entries (default: clips directory name)")
	pflag.BoolVarP(&tagNames, "tags", "t", false, "name clips from ID3 titles when present")
	pflag.Parse()

	if pflag.NArg() > 1 {
		log.Fatal("Error: expected at most one board directory")
	}
	root := "."
	if pflag.NArg() == 1 {
		root = pflag.Arg(0)
	}

	return resolve(root, catalogPath, clipsDir, prefix, tagNames)
}

// resolve fills unset paths with defaults under the board root. The record
// prefix follows the clips directory name so that catalog entries stay
// relative to the board root.
func resolve(root, catalogPath, clipsDir, prefix string, tagNames bool) UserInput {
	if catalogPath == "" {
		catalogPath = filepath.Join(root, config.DefaultCatalogFile)
	}
	if clipsDir == "" {
		clipsDir = filepath.Join(root, config.DefaultClipsDir)
	}
	if prefix == "" {
		prefix = filepath.Base(clipsDir)
	}

	return UserInput{
		CatalogPath: catalogPath,
		ClipsDir:    clipsDir,
		Prefix:      prefix,
		TagNames:    tagNames,
	}
}
