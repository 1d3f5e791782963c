// Package bagit builds and seals BagIt-style archival containers: a
// payload directory under data/ plus checksummed manifests and
// metadata tag files at the bag root.
package bagit

import (
	"fmt"
	"os"
	"path/filepath"
)

// Bag file and directory names.
const (
	DataDirName          = "data"
	TranscriptsDirName   = "transcripts"
	LLMOutputDirName     = "llm_output"
	OHDImportDirName     = "ohd_import"
	TranslationsDirName  = "translations"
	DocumentationDirName = "documentation"

	bagitFileName       = "bagit.txt"
	bagInfoFileName     = "bag-info.txt"
	manifestFileName    = "manifest-sha512.txt"
	tagManifestFileName = "tagmanifest-sha512.txt"
)

// bagitDeclaration is the fixed content of bagit.txt.
const bagitDeclaration = "BagIt-Version: 1.0\nTag-File-Character-Encoding: UTF-8\n"

// PrepareOptions configures the bag skeleton.
type PrepareOptions struct {
	// Translations adds data/translations for translated variants.
	Translations bool
}

// DataDir returns the payload directory of a bag.
func DataDir(bagRoot string) string {
	return filepath.Join(bagRoot, DataDirName)
}

// TranscriptsDir returns the transcript payload directory of a bag.
func TranscriptsDir(bagRoot string) string {
	return filepath.Join(bagRoot, DataDirName, TranscriptsDirName)
}

// OHDImportDir returns the Oral-History.Digital import directory.
func OHDImportDir(bagRoot string) string {
	return filepath.Join(bagRoot, DataDirName, OHDImportDirName)
}

// Prepare creates the bag directory skeleton and returns the
// transcripts directory for the caller to populate.
//
// Returns ErrBagExists if bagRoot already exists: a sealed bag must
// never be silently merged into or overwritten.
func Prepare(bagRoot string, opts PrepareOptions) (string, error) {
	if _, err := os.Stat(bagRoot); err == nil {
		return "", fmt.Errorf("%s: %w", bagRoot, ErrBagExists)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot access bag directory: %w", err)
	}

	transcriptsDir := TranscriptsDir(bagRoot)

	dirs := []string{
		transcriptsDir,
		filepath.Join(bagRoot, DataDirName, LLMOutputDirName),
		filepath.Join(bagRoot, DataDirName, OHDImportDirName),
		filepath.Join(bagRoot, DocumentationDirName),
	}
	if opts.Translations {
		dirs = append(dirs, filepath.Join(bagRoot, DataDirName, TranslationsDirName))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil { // #nosec G301 -- archival output dir
			return "", fmt.Errorf("cannot create bag directory %s: %w", dir, err)
		}
	}

	return transcriptsDir, nil
}
