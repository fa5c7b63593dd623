package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/glabrego/lokalavd/internal/chapter"
	"github.com/glabrego/lokalavd/internal/source"
	"github.com/glabrego/lokalavd/internal/storage"
)

const (
	defaultSource  = "lokalavdelningar.xlsx"
	defaultTimeout = 15 * time.Second
)

// Config holds runtime settings for the directory.
type Config struct {
	Source   string
	Format   string
	Table    string
	Variant  string
	Locale   string
	Header   string
	Timeout  time.Duration
	DebugLog string
}

type fileConfig struct {
	Source   string `toml:"source"`
	Format   string `toml:"format"`
	Table    string `toml:"table"`
	Variant  string `toml:"variant"`
	Locale   string `toml:"locale"`
	Header   string `toml:"header"`
	Timeout  string `toml:"timeout"`
	DebugLog string `toml:"debug_log"`
}

// LoadFromEnv reads the optional TOML file named by LOKALAVD_CONFIG and then
// applies LOKALAVD_* environment overrides.
func LoadFromEnv() (Config, error) {
	cfg := Config{}
	var rawTimeout string

	if path := strings.TrimSpace(os.Getenv("LOKALAVD_CONFIG")); path != "" {
		fc, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = Config{
			Source:   fc.Source,
			Format:   fc.Format,
			Table:    fc.Table,
			Variant:  fc.Variant,
			Locale:   fc.Locale,
			Header:   fc.Header,
			DebugLog: fc.DebugLog,
		}
		rawTimeout = fc.Timeout
	}

	override(&cfg.Source, "LOKALAVD_SOURCE")
	override(&cfg.Format, "LOKALAVD_FORMAT")
	override(&cfg.Table, "LOKALAVD_TABLE")
	override(&cfg.Variant, "LOKALAVD_VARIANT")
	override(&cfg.Locale, "LOKALAVD_LOCALE")
	override(&cfg.Header, "LOKALAVD_HEADER")
	override(&cfg.DebugLog, "LOKALAVD_DEBUG_LOG")
	override(&rawTimeout, "LOKALAVD_TIMEOUT")

	cfg.Format = strings.ToLower(cfg.Format)
	cfg.Variant = strings.ToLower(cfg.Variant)
	cfg.Header = strings.ToLower(cfg.Header)
	if cfg.Source == "" {
		cfg.Source = defaultSource
	}
	if cfg.Table == "" {
		cfg.Table = storage.DefaultTable
	}
	if cfg.Variant == "" {
		cfg.Variant = chapter.VariantExtended
	}
	if cfg.Locale == "" {
		cfg.Locale = chapter.DefaultLocale
	}
	if cfg.Header == "" {
		cfg.Header = string(chapter.HeaderAuto)
	}
	cfg.Timeout = defaultTimeout
	if rawTimeout != "" {
		d, err := time.ParseDuration(rawTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout %q: %w", rawTimeout, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

func override(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("Source is required")
	}
	switch c.Format {
	case "", source.FormatXLSX, source.FormatCSV, source.FormatSQLite:
	default:
		return fmt.Errorf("Format must be xlsx, csv or sqlite: %s", c.Format)
	}
	if _, err := chapter.SchemaFor(c.Variant); err != nil {
		return fmt.Errorf("Variant must be simple or extended: %s", c.Variant)
	}
	if _, err := chapter.ParseHeaderMode(c.Header); err != nil {
		return err
	}
	if _, err := chapter.NewCollator(c.Locale); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("Timeout must be positive: %s", c.Timeout)
	}
	return nil
}

// Schema returns the column layout of the configured variant.
func (c Config) Schema() chapter.Schema {
	s, err := chapter.SchemaFor(c.Variant)
	if err != nil {
		return chapter.Extended()
	}
	return s
}

func (c Config) HeaderMode() chapter.HeaderMode {
	m, err := chapter.ParseHeaderMode(c.Header)
	if err != nil {
		return chapter.HeaderAuto
	}
	return m
}

// SourceOptions describes the configured data source.
func (c Config) SourceOptions() source.Options {
	return source.Options{Location: c.Source, Format: c.Format, Table: c.Table}
}
