// Package config loads the application configuration from an
// optional config.toml file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SystemConfig controls workflow behavior.
type SystemConfig struct {
	ZipBags bool `mapstructure:"zip_bags"`
	Debug   bool `mapstructure:"debug"`
}

// WhisperConfig carries transcription and post-processing settings.
type WhisperConfig struct {
	Model                     string `mapstructure:"model"`
	Language                  string `mapstructure:"language"`
	TranslationEnabled        bool   `mapstructure:"translation_enabled"`
	TranslationTargetLanguage string `mapstructure:"translation_target_language"`
	MaxSentenceLength         int    `mapstructure:"max_sentence_length"`
	UseSpeakerDiarization     bool   `mapstructure:"use_speaker_diarization"`
	TitleLexiconFile          string `mapstructure:"title_lexicon_file"`
}

// BagConfig carries institutional bag metadata. Empty values are
// omitted from bag-info.txt.
type BagConfig struct {
	GroupIdentifier           string `mapstructure:"group_identifier"`
	BagCount                  string `mapstructure:"bag_count"`
	InternalSenderIdentifier  string `mapstructure:"internal_sender_identifier"`
	InternalSenderDescription string `mapstructure:"internal_sender_description"`
}

// Config is the resolved application configuration.
type Config struct {
	System  SystemConfig  `mapstructure:"system"`
	Whisper WhisperConfig `mapstructure:"whisper"`
	Bag     BagConfig     `mapstructure:"bag"`
}

// defaults mirror the values applied when config.toml is absent.
var defaults = map[string]any{
	"system.zip_bags": true,
	"system.debug":    false,

	"whisper.model":                       "large-v3",
	"whisper.language":                    "",
	"whisper.translation_enabled":         false,
	"whisper.translation_target_language": "en",
	"whisper.max_sentence_length":         120,
	"whisper.use_speaker_diarization":     false,
	"whisper.title_lexicon_file":          "",

	"bag.group_identifier":            "",
	"bag.bag_count":                   "",
	"bag.internal_sender_identifier":  "",
	"bag.internal_sender_description": "",
}

// Load resolves the configuration. Precedence, highest first:
// ASR_-prefixed environment variables, the config file, built-in
// defaults.
//
// With an empty path, config.toml is searched in the working
// directory and its absence is not an error. An explicit path must
// exist.
func Load(path string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("ASR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config: %w", err)
	}
	return &cfg, nil
}
