package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ConfigCmd creates the config command, which prints the resolved
// configuration after defaults, file, and environment are merged.
func ConfigCmd(env *Env) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration after merging built-in defaults, the
config.toml file, and ASR_-prefixed environment variables.`,
		Example: `  asr config
  asr config -c /etc/asr/config.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd, env, configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.toml if present)")

	return cmd
}

func runConfig(cmd *cobra.Command, env *Env, configPath string) error {
	cfg, err := loadConfig(env, configPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "[system]")
	fmt.Fprintf(out, "zip_bags = %t\n", cfg.System.ZipBags)
	fmt.Fprintf(out, "debug = %t\n", cfg.System.Debug)

	fmt.Fprintln(out, "\n[whisper]")
	fmt.Fprintf(out, "model = %q\n", cfg.Whisper.Model)
	fmt.Fprintf(out, "language = %q\n", cfg.Whisper.Language)
	fmt.Fprintf(out, "translation_enabled = %t\n", cfg.Whisper.TranslationEnabled)
	fmt.Fprintf(out, "translation_target_language = %q\n", cfg.Whisper.TranslationTargetLanguage)
	fmt.Fprintf(out, "max_sentence_length = %d\n", cfg.Whisper.MaxSentenceLength)
	fmt.Fprintf(out, "use_speaker_diarization = %t\n", cfg.Whisper.UseSpeakerDiarization)
	fmt.Fprintf(out, "title_lexicon_file = %q\n", cfg.Whisper.TitleLexiconFile)

	fmt.Fprintln(out, "\n[bag]")
	fmt.Fprintf(out, "group_identifier = %q\n", cfg.Bag.GroupIdentifier)
	fmt.Fprintf(out, "bag_count = %q\n", cfg.Bag.BagCount)
	fmt.Fprintf(out, "internal_sender_identifier = %q\n", cfg.Bag.InternalSenderIdentifier)
	fmt.Fprintf(out, "internal_sender_description = %q\n", cfg.Bag.InternalSenderDescription)

	return nil
}
