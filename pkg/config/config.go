/*
Package config manages the TOML config for codeassist.
*/
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/bastiangx/codeassist/internal/utils"
	"github.com/bastiangx/codeassist/pkg/editor"
)

// FileName is the config file name inside the config directory.
const FileName = "codeassist.toml"

// MarkupColor is the only supported highlight markup: <color=...> tags.
const MarkupColor = "color"

// Config holds the entire config structure
type Config struct {
	Data      DataConfig      `toml:"data"`
	Editor    EditorConfig    `toml:"editor"`
	Highlight HighlightConfig `toml:"highlight"`
	CLI       CliConfig       `toml:"cli"`
}

// DataConfig points at the catalog and keyword files.
type DataConfig struct {
	Catalog    string `toml:"catalog"`
	Keywords   string `toml:"keywords"`
	Watch      bool   `toml:"watch"`
	DebounceMs int    `toml:"debounce_ms"`
}

// EditorConfig holds the optional editing behaviors.
type EditorConfig struct {
	AutoPair bool   `toml:"auto_pair"`
	Snippets bool   `toml:"snippets"`
	Pairs    string `toml:"pairs"`
}

// HighlightConfig holds highlighter options.
type HighlightConfig struct {
	Enabled bool   `toml:"enabled"`
	Markup  string `toml:"markup"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	Prompt  string `toml:"prompt"`
	NoColor bool   `toml:"no_color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Catalog:    "catalog.json",
			Keywords:   "keywords.json",
			Watch:      false,
			DebounceMs: 150,
		},
		Editor: EditorConfig{
			AutoPair: true,
			Snippets: false,
			Pairs:    editor.DefaultPairOpeners,
		},
		Highlight: HighlightConfig{
			Enabled: true,
			Markup:  MarkupColor,
		},
		CLI: CliConfig{
			Prompt:  "> ",
			NoColor: false,
		},
	}
}

// EditorOptions maps the editor and highlight sections onto editor options.
func (c *Config) EditorOptions() editor.Options {
	return editor.Options{
		AutoPair:    c.Editor.AutoPair,
		PairOpeners: c.Editor.Pairs,
		Snippets:    c.Editor.Snippets,
		Highlight:   c.Highlight.Enabled,
	}
}

// GetDefaultConfigPath returns the default path for codeassist.toml
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		return "", err
	}
	return pr.GetConfigPath(FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/codeassist/codeassist.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; a malformed file is recovered section by section.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.validate()
	return config, nil
}

// tryPartialParse keeps every value that decodes with the right type
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(section, &config.Data)
	}
	if section, ok := utils.ExtractSection(tempConfig, "editor"); ok {
		extractEditorConfig(section, &config.Editor)
	}
	if section, ok := utils.ExtractSection(tempConfig, "highlight"); ok {
		extractHighlightConfig(section, &config.Highlight)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	config.validate()
	return config, nil
}

func extractDataConfig(data map[string]any, d *DataConfig) {
	if val, ok := utils.ExtractString(data, "catalog"); ok {
		d.Catalog = val
	}
	if val, ok := utils.ExtractString(data, "keywords"); ok {
		d.Keywords = val
	}
	if val, ok := utils.ExtractBool(data, "watch"); ok {
		d.Watch = val
	}
	if val, ok := utils.ExtractInt64(data, "debounce_ms"); ok {
		d.DebounceMs = val
	}
}

func extractEditorConfig(data map[string]any, e *EditorConfig) {
	if val, ok := utils.ExtractBool(data, "auto_pair"); ok {
		e.AutoPair = val
	}
	if val, ok := utils.ExtractBool(data, "snippets"); ok {
		e.Snippets = val
	}
	if val, ok := utils.ExtractString(data, "pairs"); ok {
		e.Pairs = val
	}
}

func extractHighlightConfig(data map[string]any, h *HighlightConfig) {
	if val, ok := utils.ExtractBool(data, "enabled"); ok {
		h.Enabled = val
	}
	if val, ok := utils.ExtractString(data, "markup"); ok {
		h.Markup = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "prompt"); ok {
		cli.Prompt = val
	}
	if val, ok := utils.ExtractBool(data, "no_color"); ok {
		cli.NoColor = val
	}
}

// validate resets values the rest of the program cannot use
func (c *Config) validate() {
	if c.Highlight.Markup != MarkupColor {
		log.Warnf("Unsupported highlight markup %q, using %q", c.Highlight.Markup, MarkupColor)
		c.Highlight.Markup = MarkupColor
	}
	if c.Data.DebounceMs <= 0 {
		c.Data.DebounceMs = DefaultConfig().Data.DebounceMs
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the editor toggles and saves to file
func (c *Config) Update(configPath string, autoPair, snippets *bool, pairs *string) error {
	if autoPair != nil {
		c.Editor.AutoPair = *autoPair
	}
	if snippets != nil {
		c.Editor.Snippets = *snippets
	}
	if pairs != nil {
		c.Editor.Pairs = *pairs
	}
	return SaveConfig(c, configPath)
}
