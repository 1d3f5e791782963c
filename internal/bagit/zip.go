package bagit

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// Zip creates a ZIP archive of a sealed bag next to it and returns
// the archive path. Entries are rooted at the bag's base name, so
// unpacking recreates the bag directory. An existing archive with
// the same name is replaced. The archive is a pure function of the
// sealed directory; the bag itself is not touched.
func Zip(bagRoot string) (string, error) {
	fi, err := os.Stat(bagRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", bagRoot, ErrBagNotFound)
		}
		return "", fmt.Errorf("cannot access bag directory: %w", err)
	}
	if !fi.IsDir() {
		return "", fmt.Errorf("%s is not a directory: %w", bagRoot, ErrBagNotFound)
	}

	archivePath := bagRoot + ".zip"
	if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("cannot replace existing archive: %w", err)
	}

	f, err := os.Create(archivePath) // #nosec G304 -- derived from the bag path
	if err != nil {
		return "", fmt.Errorf("cannot create archive: %w", err)
	}

	if err := writeArchive(f, bagRoot); err != nil {
		_ = f.Close()
		_ = os.Remove(archivePath)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(archivePath)
		return "", fmt.Errorf("cannot close archive: %w", err)
	}

	return archivePath, nil
}

func writeArchive(f *os.File, bagRoot string) error {
	w := zip.NewWriter(f)
	base := filepath.Base(bagRoot)

	err := filepath.WalkDir(bagRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := relPosix(bagRoot, path)
		if err != nil {
			return err
		}

		entry, err := w.Create(base + "/" + rel)
		if err != nil {
			return fmt.Errorf("cannot add archive entry %s: %w", rel, err)
		}

		src, err := os.Open(path) // #nosec G304 -- file inside the bag
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", rel, err)
		}
		_, err = io.Copy(entry, src)
		_ = src.Close()
		if err != nil {
			return fmt.Errorf("cannot archive %s: %w", rel, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("cannot finish archive: %w", err)
	}
	return nil
}
