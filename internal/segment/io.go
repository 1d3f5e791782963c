package segment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ReadFile loads a whisperx-style JSON document from path.
func ReadFile(path string) (Document, error) {
	var doc Document

	data, err := os.ReadFile(path) // #nosec G304 -- user-specified input file
	if err != nil {
		return doc, fmt.Errorf("cannot read segments file: %w", err)
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("cannot parse segments file %s: %w", path, err)
	}
	return doc, nil
}

// Marshal renders a document as indented UTF-8 JSON without HTML
// escaping, matching the upstream transcription output files.
func Marshal(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("cannot encode segments: %w", err)
	}
	return buf.Bytes(), nil
}
