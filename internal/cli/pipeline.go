package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/asr4memory/go-asr/internal/config"
	"github.com/asr4memory/go-asr/internal/postprocess"
	"github.com/asr4memory/go-asr/internal/segment"
)

// loadConfig resolves the configuration, wrapping failures in the
// ErrConfig sentinel so main can map them to the setup exit code.
func loadConfig(env *Env, path string) (*config.Config, error) {
	cfg, err := env.ConfigLoader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return cfg, nil
}

// loadDocument validates the input path and reads the segments file.
// Validation order: file exists -> format -> content.
func loadDocument(inputPath string) (segment.Document, error) {
	var doc segment.Document

	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return doc, fmt.Errorf("%w: %s", ErrFileNotFound, inputPath)
		}
		return doc, fmt.Errorf("cannot access input file: %w", err)
	}

	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".json" {
		return doc, fmt.Errorf("unsupported format %q (expected a .json segments file): %w",
			ext, ErrUnsupportedFormat)
	}

	doc, err := segment.ReadFile(inputPath)
	if err != nil {
		return doc, err
	}
	if err := segment.Validate(doc.Segments); err != nil {
		return doc, err
	}
	return doc, nil
}

// processOptions builds the post-processing options from the resolved
// configuration, loading the title lexicon file when configured.
func processOptions(cfg *config.Config) (postprocess.Options, error) {
	opts := postprocess.Options{
		MaxSentenceLength:     cfg.Whisper.MaxSentenceLength,
		UseSpeakerDiarization: cfg.Whisper.UseSpeakerDiarization,
	}

	if path := cfg.Whisper.TitleLexiconFile; path != "" {
		titles, err := postprocess.LoadTitles(path)
		if err != nil {
			return opts, fmt.Errorf("%w: %v", ErrConfig, err)
		}
		opts.Classifier = postprocess.NewClassifier(postprocess.WithTitles(titles...))
	}

	return opts, nil
}

// inputStem returns the input file name without directory and
// extension.
func inputStem(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
