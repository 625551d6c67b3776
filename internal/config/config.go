package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultFetchConcurrent = 10
	defaultHTTPTimeoutSec  = 20
)

const (
	defaultUserAgent       = "hnmd/0.1"
	defaultTimestampFormat = "2006-01-02 15:04"
	defaultTemplate        = "{{title}} - {{post-id}}"
	defaultAPIBaseURL      = "https://hacker-news.firebaseio.com/v0"
	defaultWebBaseURL      = "https://news.ycombinator.com"
	configFolderName       = "hnmd"
	configFileName         = "config.toml"
	configPathEnvName      = "XDG_CONFIG_HOME"
)

type Config struct {
	DBPath           string
	NotesDir         string
	FilenameTemplate string
	TimestampFormat  string
	EnhancedLinks    bool
	WrapHTMLTags     bool
	FetchConcurrency int
	HTTPTimeout      time.Duration
	UserAgent        string
	APIBaseURL       string
	WebBaseURL       string
	FeedURL          string
}

func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	defaultDB := filepath.Join(home, ".local", "share", "hnmd", "hnmd.db")
	defaultNotes := filepath.Join(home, ".local", "share", "hnmd", "notes")

	cfg := Config{
		DBPath:           defaultDB,
		NotesDir:         defaultNotes,
		FilenameTemplate: defaultTemplate,
		TimestampFormat:  defaultTimestampFormat,
		EnhancedLinks:    true,
		WrapHTMLTags:     true,
		FetchConcurrency: defaultFetchConcurrent,
		HTTPTimeout:      defaultHTTPTimeoutSec * time.Second,
		UserAgent:        defaultUserAgent,
		APIBaseURL:       defaultAPIBaseURL,
		WebBaseURL:       defaultWebBaseURL,
		FeedURL:          defaultWebBaseURL + "/rss",
	}

	configPath, hasConfig, err := findConfigPath(home)
	if err != nil {
		return Config{}, err
	}
	if hasConfig {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return Config{}, err
		}
		applyFileConfig(&cfg, fileCfg)
	}

	applyEnvOverrides(&cfg)

	if cfg.FetchConcurrency < 1 {
		cfg.FetchConcurrency = defaultFetchConcurrent
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultHTTPTimeoutSec * time.Second
	}
	if strings.TrimSpace(cfg.TimestampFormat) == "" {
		cfg.TimestampFormat = defaultTimestampFormat
	}
	if strings.TrimSpace(cfg.FilenameTemplate) == "" {
		cfg.FilenameTemplate = defaultTemplate
	}
	return cfg, nil
}

type fileConfig struct {
	DBPath           *string `toml:"db_path"`
	NotesDir         *string `toml:"notes_dir"`
	FilenameTemplate *string `toml:"filename_template"`
	TimestampFormat  *string `toml:"timestamp_format"`
	EnhancedLinks    *bool   `toml:"enhanced_links"`
	WrapHTMLTags     *bool   `toml:"wrap_html_tags"`
	FetchConcurrency *int    `toml:"fetch_concurrency"`
	HTTPTimeoutSec   *int    `toml:"http_timeout_seconds"`
	UserAgent        *string `toml:"user_agent"`
}

func findConfigPath(home string) (string, bool, error) {
	candidates := make([]string, 0, 2)
	if xdgConfigHome := strings.TrimSpace(os.Getenv(configPathEnvName)); xdgConfigHome != "" {
		candidates = append(candidates, filepath.Join(xdgConfigHome, configFolderName, configFileName))
	}
	candidates = append(candidates, filepath.Join(home, ".config", configFolderName, configFileName))

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, fmt.Errorf("config path %q is a directory; expected a file", candidate)
			}
			return candidate, true, nil
		}
		if os.IsNotExist(err) {
			continue
		}
		return "", false, fmt.Errorf("failed to read config path %q: %w", candidate, err)
	}
	return "", false, nil
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		unknown := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		sort.Strings(unknown)
		return fileConfig{}, fmt.Errorf("invalid config file %q: unknown key(s): %s", path, strings.Join(unknown, ", "))
	}
	if err := validateFileConfig(path, cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func validateFileConfig(path string, cfg fileConfig) error {
	if cfg.DBPath != nil && strings.TrimSpace(*cfg.DBPath) == "" {
		return fmt.Errorf("invalid config file %q: db_path must be non-empty when provided", path)
	}
	if cfg.NotesDir != nil && strings.TrimSpace(*cfg.NotesDir) == "" {
		return fmt.Errorf("invalid config file %q: notes_dir must be non-empty when provided", path)
	}
	if cfg.FilenameTemplate != nil && strings.TrimSpace(*cfg.FilenameTemplate) == "" {
		return fmt.Errorf("invalid config file %q: filename_template must be non-empty when provided", path)
	}
	if cfg.FetchConcurrency != nil && *cfg.FetchConcurrency < 1 {
		return fmt.Errorf("invalid config file %q: fetch_concurrency must be >= 1", path)
	}
	if cfg.HTTPTimeoutSec != nil && *cfg.HTTPTimeoutSec <= 0 {
		return fmt.Errorf("invalid config file %q: http_timeout_seconds must be > 0", path)
	}
	return nil
}

func applyFileConfig(cfg *Config, fileCfg fileConfig) {
	if fileCfg.DBPath != nil {
		cfg.DBPath = *fileCfg.DBPath
	}
	if fileCfg.NotesDir != nil {
		cfg.NotesDir = *fileCfg.NotesDir
	}
	if fileCfg.FilenameTemplate != nil {
		cfg.FilenameTemplate = *fileCfg.FilenameTemplate
	}
	if fileCfg.TimestampFormat != nil {
		cfg.TimestampFormat = *fileCfg.TimestampFormat
	}
	if fileCfg.EnhancedLinks != nil {
		cfg.EnhancedLinks = *fileCfg.EnhancedLinks
	}
	if fileCfg.WrapHTMLTags != nil {
		cfg.WrapHTMLTags = *fileCfg.WrapHTMLTags
	}
	if fileCfg.FetchConcurrency != nil {
		cfg.FetchConcurrency = *fileCfg.FetchConcurrency
	}
	if fileCfg.HTTPTimeoutSec != nil {
		cfg.HTTPTimeout = time.Duration(*fileCfg.HTTPTimeoutSec) * time.Second
	}
	if fileCfg.UserAgent != nil {
		cfg.UserAgent = *fileCfg.UserAgent
	}
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("HNMD_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("HNMD_NOTES_DIR"); ok && v != "" {
		cfg.NotesDir = v
	}
	if v, ok := os.LookupEnv("HNMD_FILENAME_TEMPLATE"); ok && v != "" {
		cfg.FilenameTemplate = v
	}
	if v, ok := os.LookupEnv("HNMD_TIMESTAMP_FORMAT"); ok && v != "" {
		cfg.TimestampFormat = v
	}
	if v, ok := os.LookupEnv("HNMD_ENHANCED_LINKS"); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.EnhancedLinks = b
		}
	}
	if v, ok := os.LookupEnv("HNMD_WRAP_HTML_TAGS"); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WrapHTMLTags = b
		}
	}
	if v, ok := os.LookupEnv("HNMD_FETCH_CONCURRENCY"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.FetchConcurrency = n
		}
	}
	if v, ok := os.LookupEnv("HNMD_HTTP_TIMEOUT_SECONDS"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPTimeout = time.Duration(n) * time.Second
		}
	}
	if v, ok := os.LookupEnv("HNMD_USER_AGENT"); ok && v != "" {
		cfg.UserAgent = v
	}
	if v, ok := os.LookupEnv("HNMD_API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv("HNMD_WEB_BASE_URL"); ok && v != "" {
		cfg.WebBaseURL = v
	}
	if v, ok := os.LookupEnv("HNMD_FEED_URL"); ok && v != "" {
		cfg.FeedURL = v
	}
}
