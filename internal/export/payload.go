package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/asr4memory/go-asr/internal/segment"
)

// Payload writes the full delivery set for a processed document into
// dir, using base as the file stem, and returns the created paths in
// write order. Existing files are never overwritten.
func Payload(dir, base string, doc segment.Document) ([]string, error) {
	entries := []struct {
		name  string
		write func(io.Writer) error
	}{
		{base + ".vtt", func(w io.Writer) error { return WriteVTT(w, doc.Segments) }},
		{base + ".srt", func(w io.Writer) error { return WriteSRT(w, doc.Segments) }},
		{base + ".txt", func(w io.Writer) error { return WriteText(w, doc.Segments) }},
		{base + ".csv", func(w io.Writer) error {
			return WriteCSV(w, doc.Segments, CSVOptions{})
		}},
		{base + "_speaker.csv", func(w io.Writer) error {
			return WriteCSV(w, doc.Segments, CSVOptions{Speaker: true, Header: true})
		}},
		{base + "_word_segments.vtt", func(w io.Writer) error {
			return WriteWordVTT(w, doc.WordSegments)
		}},
		{base + "_word_segments.csv", func(w io.Writer) error {
			return WriteWordCSV(w, doc.WordSegments)
		}},
		{base + ".json", func(w io.Writer) error { return WriteJSON(w, doc) }},
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(dir, e.name)
		if err := WriteFile(path, e.write); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteFile creates path exclusively and streams write into it.
// Fails if the file already exists so sealed output is never
// clobbered.
func WriteFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644) // #nosec G302 G304 -- archival output file
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}

	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot close output file %s: %w", path, err)
	}
	return nil
}
