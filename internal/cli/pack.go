package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asr4memory/go-asr/internal/bagit"
	"github.com/asr4memory/go-asr/internal/config"
	"github.com/asr4memory/go-asr/internal/export"
	"github.com/asr4memory/go-asr/internal/postprocess"
	"github.com/asr4memory/go-asr/internal/segment"
)

// bagTimestampLayout is the UTC suffix appended to bag directory
// names so repeated runs of the same input never collide.
const bagTimestampLayout = "2006-01-02T150405Z"

// PackCmd creates the pack command.
// The env parameter provides injectable dependencies for testing.
func PackCmd(env *Env) *cobra.Command {
	var (
		outputDir  string
		configPath string
		source     string
	)

	cmd := &cobra.Command{
		Use:   "pack <segments.json>",
		Short: "Process a transcript and seal it into a BagIt archive",
		Long: `Process a whisperx transcript and package the delivery formats
into a BagIt bag.

The segments are post-processed, exported as VTT, SRT, CSV, text and
JSON into the bag's data/transcripts directory, the speaker CSV is
duplicated into data/ohd_import, and the bag is sealed with SHA-512
manifests and bag-info metadata. With zip_bags enabled the sealed bag
is also archived as a ZIP next to the bag directory.`,
		Example: `  asr pack session.json
  asr pack session.json -o /archive --source session.wav
  asr pack session.json -c config.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(env, args[0], outputDir, configPath, source)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory to create the bag in (default: input file's directory)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.toml if present)")
	cmd.Flags().StringVar(&source, "source", "", "Source media filename for bag metadata (default: input name)")

	return cmd
}

// bagRootName derives the bag directory name from the input stem, the
// model, the language, and a UTC timestamp.
func bagRootName(env *Env, cfg *config.Config, inputPath string) string {
	name := inputStem(inputPath) + "_" + cfg.Whisper.Model
	if cfg.Whisper.Language != "" {
		name += "_" + cfg.Whisper.Language
	}
	return name + "." + env.Now().UTC().Format(bagTimestampLayout)
}

// runPack executes the full packaging pipeline.
func runPack(env *Env, inputPath, outputDir, configPath, source string) error {
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

	log.Infow("processing segments", "file", inputPath, "segments", len(doc.Segments))
	result := postprocess.Process(doc.Segments, opts)
	processed := segment.Document{
		Segments:     result.Segments,
		WordSegments: result.WordSegments,
	}

	if outputDir == "" {
		outputDir = filepath.Dir(inputPath)
	}
	bagRoot := filepath.Join(outputDir, bagRootName(env, cfg, inputPath))

	transcriptsDir, err := bagit.Prepare(bagRoot, bagit.PrepareOptions{
		Translations: cfg.Whisper.TranslationEnabled,
	})
	if err != nil {
		return err
	}
	log.Infow("bag prepared", "bag", bagRoot)

	stem := inputStem(inputPath)
	payload, err := export.Payload(transcriptsDir, stem, processed)
	if err != nil {
		return err
	}

	// The speaker CSV doubles as the Oral-History.Digital import file.
	ohdCSV := filepath.Join(bagit.OHDImportDir(bagRoot), stem+"_speaker.csv")
	err = export.WriteFile(ohdCSV, func(w io.Writer) error {
		return export.WriteCSV(w, processed.Segments, export.CSVOptions{Speaker: true, Header: true})
	})
	if err != nil {
		return err
	}
	payload = append(payload, ohdCSV)
	log.Infow("payload written", "files", len(payload))

	if source == "" {
		source = filepath.Base(inputPath)
	}
	info := bagit.BuildInfo(bagit.BuildInfoParams{
		SourceFilename:     source,
		Model:              cfg.Whisper.Model,
		Language:           cfg.Whisper.Language,
		AudioLengthSeconds: audioLength(processed.Segments),

		TranslationEnabled: cfg.Whisper.TranslationEnabled,
		SourceLanguage:     cfg.Whisper.Language,
		TargetLanguage:     cfg.Whisper.TranslationTargetLanguage,

		GroupIdentifier:           cfg.Bag.GroupIdentifier,
		BagCount:                  cfg.Bag.BagCount,
		InternalSenderIdentifier:  cfg.Bag.InternalSenderIdentifier,
		InternalSenderDescription: cfg.Bag.InternalSenderDescription,
	})

	if err := bagit.Finalize(bagRoot, payload, info, bagit.WithClock(env.Now)); err != nil {
		return err
	}
	log.Infow("bag sealed", "bag", bagRoot)

	if cfg.System.ZipBags {
		archive, err := bagit.Zip(bagRoot)
		if err != nil {
			return err
		}
		log.Infow("bag archived", "archive", archive)
		fmt.Fprintf(env.Stderr, "Done: %s\n", archive)
		return nil
	}

	fmt.Fprintf(env.Stderr, "Done: %s\n", bagRoot)
	return nil
}

// audioLength returns the end time of the last segment, which is the
// best available stand-in for the source audio duration.
func audioLength(segs []segment.Segment) float64 {
	var max float64
	for _, seg := range segs {
		if seg.End > max {
			max = seg.End
		}
	}
	return max
}
