package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asr4memory/go-asr/internal/export"
	"github.com/asr4memory/go-asr/internal/postprocess"
	"github.com/asr4memory/go-asr/internal/segment"
)

// deriveProcessedPath converts a segments file path to the default
// output path. Example: "session.json" -> "session_processed.json".
func deriveProcessedPath(inputPath string) string {
	return filepath.Join(filepath.Dir(inputPath), inputStem(inputPath)+"_processed.json")
}

// ProcessCmd creates the process command.
// The env parameter provides injectable dependencies for testing.
func ProcessCmd(env *Env) *cobra.Command {
	var (
		output     string
		configPath string
		maxLength  int
		diarize    bool
	)

	cmd := &cobra.Command{
		Use:   "process <segments.json>",
		Short: "Correct sentence boundaries in a transcript",
		Long: `Correct sentence boundaries in a whisperx transcript.

Falsely split sentences are merged back together, sentence starts are
capitalized, and over-long sentences are split at commas with
proportionally interpolated timestamps. Word-level timings follow
their sentences.`,
		Example: `  asr process session.json
  asr process session.json -o corrected.json
  asr process session.json --max-length 90 --diarize`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(env, args[0], output, configPath, maxLength, diarize)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: <input>_processed.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.toml if present)")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "Sentence length budget in characters (overrides config)")
	cmd.Flags().BoolVar(&diarize, "diarize", false, "Keep speaker tags through processing (overrides config)")

	return cmd
}

// runProcess executes the post-processing pipeline on a single file.
func runProcess(env *Env, inputPath, output, configPath string, maxLength int, diarize bool) error {
	cfg, err := loadConfig(env, configPath)
	if err != nil {
		return err
	}
	log := env.NewLogger(cfg.System.Debug)
	defer func() { _ = log.Sync() }()

	doc, err := loadDocument(inputPath)
	if err != nil {
		return err
	}

	opts, err := processOptions(cfg)
	if err != nil {
		return err
	}
	if maxLength > 0 {
		opts.MaxSentenceLength = maxLength
	}
	if diarize {
		opts.UseSpeakerDiarization = true
	}

	log.Infow("processing segments", "file", inputPath, "segments", len(doc.Segments))
	result := postprocess.Process(doc.Segments, opts)
	log.Infow("processing complete",
		"segments_in", len(doc.Segments), "segments_out", len(result.Segments))

	if output == "" {
		output = deriveProcessedPath(inputPath)
	}

	processed := segment.Document{
		Segments:     result.Segments,
		WordSegments: result.WordSegments,
	}
	err = export.WriteFile(output, func(w io.Writer) error {
		return export.WriteJSON(w, processed)
	})
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("output file already exists: %s: %w", output, ErrOutputExists)
		}
		return err
	}

	fmt.Fprintf(env.Stderr, "Done: %s\n", output)
	return nil
}
