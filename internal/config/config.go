package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"visab/internal/matcher"
)

// DocumentConfig points at the reference document the corpus is built from.
// When URL is set the article at that address is fetched instead of Path,
// and Watch has no effect.
type DocumentConfig struct {
	Path  string `yaml:"path"`
	URL   string `yaml:"url,omitempty"`
	Watch bool   `yaml:"watch"`
}

// ChunkerConfig configures how the document is split into corpus entries.
type ChunkerConfig struct {
	Type              string `yaml:"type"`
	SentencesPerChunk int    `yaml:"sentences_per_chunk"`
	OverlapSentences  int    `yaml:"overlap_sentences"`
}

// RankerConfig selects the vectorizer used for similarity ranking.
type RankerConfig struct {
	Vectorizer string `yaml:"vectorizer"`
}

// ComposerConfig bounds the length of retrieved replies.
type ComposerConfig struct {
	MaxWords     int `yaml:"max_words"`
	MaxSentences int `yaml:"max_sentences"`
}

// GreetingsConfig holds the recognised user greetings and the bot's replies.
type GreetingsConfig struct {
	User []string `yaml:"user"`
	Bot  []string `yaml:"bot"`
}

// SummarizerConfig selects and configures the summarizer.
type SummarizerConfig struct {
	Type         string `yaml:"type"`
	MaxSentences int    `yaml:"max_sentences"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr           string `yaml:"addr"`
	CORSOrigins    string `yaml:"cors_origins"`
	RateLimitRPM   int    `yaml:"rate_limit_rpm"`
	RateLimitBurst int    `yaml:"rate_limit_burst"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Production bool   `yaml:"production"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Document   DocumentConfig       `yaml:"document"`
	Chunker    ChunkerConfig        `yaml:"chunker"`
	Ranker     RankerConfig         `yaml:"ranker"`
	Composer   ComposerConfig       `yaml:"composer"`
	Greetings  GreetingsConfig      `yaml:"greetings"`
	Prompts    []matcher.PromptRule `yaml:"prompts"`
	Summarizer SummarizerConfig     `yaml:"summarizer"`
	Server     ServerConfig         `yaml:"server"`
	Log        LogConfig            `yaml:"log"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
// Environment overrides are applied in both cases.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/visab/config.yaml.
// If neither exists, it writes defaults to ~/.config/visab/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	applyEnvOverrides(cfg)
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "visab", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Document:   DocumentConfig{Path: "data/ckd.txt"},
		Chunker:    ChunkerConfig{Type: "sentence", SentencesPerChunk: 1},
		Ranker:     RankerConfig{Vectorizer: "count"},
		Composer:   ComposerConfig{MaxWords: 80, MaxSentences: 3},
		Greetings:  GreetingsConfig{User: matcher.DefaultUserGreetings(), Bot: matcher.DefaultBotGreetings()},
		Prompts:    matcher.DefaultPrompts(),
		Summarizer: SummarizerConfig{Type: "frequency", MaxSentences: 3},
		Server:     ServerConfig{Addr: ":5000", CORSOrigins: "*", RateLimitRPM: 120, RateLimitBurst: 20},
		Log:        LogConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Document.Path == "" {
		cfg.Document.Path = def.Document.Path
	}
	if cfg.Chunker.SentencesPerChunk == 0 {
		cfg.Chunker.SentencesPerChunk = 1
	}
	if cfg.Ranker.Vectorizer == "" {
		cfg.Ranker.Vectorizer = def.Ranker.Vectorizer
	}
	if cfg.Composer.MaxWords == 0 {
		cfg.Composer.MaxWords = def.Composer.MaxWords
	}
	if cfg.Composer.MaxSentences == 0 {
		cfg.Composer.MaxSentences = def.Composer.MaxSentences
	}
	// Greetings and prompts replace the built-ins only when given.
	if cfg.Greetings.User == nil {
		cfg.Greetings.User = def.Greetings.User
	}
	if cfg.Greetings.Bot == nil {
		cfg.Greetings.Bot = def.Greetings.Bot
	}
	if cfg.Prompts == nil {
		cfg.Prompts = def.Prompts
	}
	if cfg.Summarizer.MaxSentences == 0 {
		cfg.Summarizer.MaxSentences = def.Summarizer.MaxSentences
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = def.Server.Addr
	}
	if cfg.Server.CORSOrigins == "" {
		cfg.Server.CORSOrigins = def.Server.CORSOrigins
	}
	// A negative rate_limit_rpm turns limiting off.
	if cfg.Server.RateLimitRPM == 0 {
		cfg.Server.RateLimitRPM = def.Server.RateLimitRPM
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = def.Server.RateLimitBurst
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
}

// applyEnvOverrides applies VISAB_* environment variables on top of file values.
func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("VISAB_DOCUMENT"); v != "" {
		cfg.Document.Path = v
	}
	if v := os.Getenv("VISAB_DOCUMENT_URL"); v != "" {
		cfg.Document.URL = v
	}
	if v := os.Getenv("VISAB_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("VISAB_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}
