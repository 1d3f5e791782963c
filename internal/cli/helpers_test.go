package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/asr4memory/go-asr/internal/cli"
	"github.com/asr4memory/go-asr/internal/config"
	"github.com/asr4memory/go-asr/internal/logging"
	"github.com/asr4memory/go-asr/internal/segment"
)

// stubConfigLoader returns a fixed configuration or error.
type stubConfigLoader struct {
	cfg *config.Config
	err error
}

func (s stubConfigLoader) Load(string) (*config.Config, error) {
	return s.cfg, s.err
}

// testConfig returns a configuration with zipping disabled so tests
// stay fast unless they opt in.
func testConfig() *config.Config {
	return &config.Config{
		System: config.SystemConfig{ZipBags: false},
		Whisper: config.WhisperConfig{
			Model:             "large-v3",
			Language:          "de",
			MaxSentenceLength: 120,
		},
	}
}

// testNow is the fixed clock used by command tests.
func testNow() time.Time {
	return time.Date(2026, 5, 1, 23, 59, 0, 0, time.UTC)
}

// newTestEnv builds an Env with a stub config loader, a discarded
// logger, a buffered stderr, and a fixed clock.
func newTestEnv(cfg *config.Config) (*cli.Env, *bytes.Buffer) {
	stderr := &bytes.Buffer{}
	env := cli.NewEnv(
		cli.WithStderr(stderr),
		cli.WithNow(testNow),
		cli.WithConfigLoader(stubConfigLoader{cfg: cfg}),
		cli.WithLogger(func(bool) *logging.Logger { return logging.Nop() }),
	)
	return env, stderr
}

// writeSegmentsFile writes a segments document as JSON into dir and
// returns its path.
func writeSegmentsFile(t *testing.T, dir, name string, doc segment.Document) string {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling segments: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing segments file: %v", err)
	}
	return path
}

// readDocument reads a processed output file back.
func readDocument(t *testing.T, path string) segment.Document {
	t.Helper()

	doc, err := segment.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output document: %v", err)
	}
	return doc
}
