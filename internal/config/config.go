package config

const (
	// DefaultCatalogFile is the catalog filename, resolved under the board root
	DefaultCatalogFile = "soundclips.json"

	// DefaultClipsDir is the audio clips directory, resolved under the board root
	DefaultClipsDir = "audio-clips"

	// ClipExtension is the only suffix the scanner admits (case-sensitive)
	ClipExtension = ".mp3"

	// CatalogIndent matches the four-space indent of the existing catalog
	CatalogIndent = "    "

	// CatalogFileMode is the permission for a rewritten catalog
	CatalogFileMode = 0644
)
