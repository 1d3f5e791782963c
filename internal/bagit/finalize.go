package bagit

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// maxSizeIterations caps the Bag-Size fixed-point loop. The loop
// normally settles within two or three rounds; anything beyond the
// cap means the size string keeps flipping (for example across a
// unit boundary) and is reported instead of looping forever.
const maxSizeIterations = 10

type finalizer struct {
	now      func() time.Time
	parallel int
}

// FinalizeOption configures Finalize.
type FinalizeOption func(*finalizer)

// WithClock sets the time source for Bagging-Date.
func WithClock(now func() time.Time) FinalizeOption {
	return func(f *finalizer) {
		if now != nil {
			f.now = now
		}
	}
}

// WithHashParallelism bounds the concurrent payload checksum workers.
func WithHashParallelism(n int) FinalizeOption {
	return func(f *finalizer) {
		if n > 0 {
			f.parallel = n
		}
	}
}

// Finalize seals a bag: it writes the bagit.txt declaration, the
// sorted SHA-512 payload manifest, bag-info.txt metadata, and the
// tag manifest, iterating the self-referential Bag-Size field to a
// fixed point.
//
// payloadFiles are the files already written under the bag's data/
// tree. extra metadata keys override computed keys on collision;
// insertion order is preserved in bag-info.txt. The bag directory is
// exclusively owned by this call: concurrent finalization of the
// same bag is not supported.
func Finalize(bagRoot string, payloadFiles []string, extra *Info, opts ...FinalizeOption) error {
	fz := &finalizer{now: time.Now, parallel: defaultHashParallelism}
	for _, opt := range opts {
		opt(fz)
	}

	if err := os.WriteFile(filepath.Join(bagRoot, bagitFileName),
		[]byte(bagitDeclaration), 0644); err != nil { // #nosec G306 -- world-readable archival data
		return fmt.Errorf("cannot write %s: %w", bagitFileName, err)
	}

	// Sort payload by relative POSIX path for deterministic manifests.
	type payloadEntry struct {
		path string
		rel  string
		size int64
	}
	payload := make([]payloadEntry, 0, len(payloadFiles))
	var totalBytes int64
	for _, p := range payloadFiles {
		rel, err := relPosix(bagRoot, p)
		if err != nil {
			return err
		}
		fi, err := os.Stat(p)
		if err != nil {
			return fmt.Errorf("cannot stat payload file: %w", err)
		}
		payload = append(payload, payloadEntry{path: p, rel: rel, size: fi.Size()})
		totalBytes += fi.Size()
	}
	sort.Slice(payload, func(a, b int) bool { return payload[a].rel < payload[b].rel })

	info := &Info{}
	info.Set("Bagging-Date", fz.now().UTC().Format("2006-01-02"))
	info.Set("Payload-Oxum", fmt.Sprintf("%d.%d", totalBytes, len(payload)))
	if extra != nil {
		for _, f := range extra.Fields() {
			info.Set(f.Key, f.Value)
		}
	}
	info.SetDefault("Bag-Description", DefaultBagDescription)

	paths := make([]string, len(payload))
	for i, p := range payload {
		paths[i] = p.path
	}
	sums, err := checksumAll(paths, fz.parallel)
	if err != nil {
		return err
	}

	var manifest strings.Builder
	for i, p := range payload {
		fmt.Fprintf(&manifest, "%s  %s\n", sums[i], p.rel)
	}
	if err := os.WriteFile(filepath.Join(bagRoot, manifestFileName),
		[]byte(manifest.String()), 0644); err != nil { // #nosec G306
		return fmt.Errorf("cannot write %s: %w", manifestFileName, err)
	}

	// Bag-Size depends on the sizes of bag-info.txt and the tag
	// manifest, which in turn depend on Bag-Size. Recompute until the
	// value is stable.
	var bagSize string
	for iter := 0; iter < maxSizeIterations; iter++ {
		if bagSize == "" {
			info.Del("Bag-Size")
		} else {
			info.Set("Bag-Size", bagSize)
		}

		if err := writeBagInfo(bagRoot, info); err != nil {
			return err
		}

		tagFiles, err := tagFilePaths(bagRoot)
		if err != nil {
			return err
		}
		if err := writeTagManifest(bagRoot, tagFiles); err != nil {
			return err
		}

		newSize, err := computeBagSize(bagRoot, totalBytes)
		if err != nil {
			return err
		}
		if newSize == bagSize {
			return nil
		}
		bagSize = newSize
	}

	return fmt.Errorf("bag-size still changing after %d iterations: %w",
		maxSizeIterations, ErrBagSizeUnstable)
}

// relPosix returns path relative to bagRoot with forward slashes.
func relPosix(bagRoot, path string) (string, error) {
	rel, err := filepath.Rel(bagRoot, path)
	if err != nil {
		return "", fmt.Errorf("file %s is not relative to bag root %s: %w", path, bagRoot, err)
	}
	return filepath.ToSlash(rel), nil
}

// tagFilePaths lists every file under bagRoot that is not in the
// payload tree and is not the tag manifest itself, sorted by path.
func tagFilePaths(bagRoot string) ([]string, error) {
	dataDir := DataDir(bagRoot)

	var files []string
	err := filepath.WalkDir(bagRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == dataDir {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Base(path) == tagManifestFileName && filepath.Dir(path) == bagRoot {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot enumerate tag files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

// writeBagInfo writes bag-info.txt in insertion order.
func writeBagInfo(bagRoot string, info *Info) error {
	var b strings.Builder
	for _, f := range info.Fields() {
		fmt.Fprintf(&b, "%s: %s\n", f.Key, f.Value)
	}
	if err := os.WriteFile(filepath.Join(bagRoot, bagInfoFileName),
		[]byte(b.String()), 0644); err != nil { // #nosec G306
		return fmt.Errorf("cannot write %s: %w", bagInfoFileName, err)
	}
	return nil
}

// writeTagManifest writes tagmanifest-sha512.txt for the given tag
// files. The tag manifest never lists itself.
func writeTagManifest(bagRoot string, tagFiles []string) error {
	var b strings.Builder
	for _, path := range tagFiles {
		sum, err := SHA512File(path)
		if err != nil {
			return err
		}
		rel, err := relPosix(bagRoot, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s  %s\n", sum, rel)
	}
	if err := os.WriteFile(filepath.Join(bagRoot, tagManifestFileName),
		[]byte(b.String()), 0644); err != nil { // #nosec G306
		return fmt.Errorf("cannot write %s: %w", tagManifestFileName, err)
	}
	return nil
}

// computeBagSize totals the payload bytes plus every tag file,
// including the just-written tag manifest, as a display string.
func computeBagSize(bagRoot string, payloadBytes int64) (string, error) {
	tagFiles, err := tagFilePaths(bagRoot)
	if err != nil {
		return "", err
	}
	tagManifestPath := filepath.Join(bagRoot, tagManifestFileName)
	if _, err := os.Stat(tagManifestPath); err == nil {
		tagFiles = append(tagFiles, tagManifestPath)
	}

	total := payloadBytes
	for _, path := range tagFiles {
		fi, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("cannot stat tag file: %w", err)
		}
		total += fi.Size()
	}
	return FormatSize(total), nil
}
