package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default file not written: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(reloaded, DefaultConfig()) {
		t.Errorf("reloaded = %+v", reloaded)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
[data]
catalog = "unity.yaml"
watch = true

[editor]
snippets = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Data.Catalog != "unity.yaml" || !cfg.Data.Watch {
		t.Errorf("data = %+v", cfg.Data)
	}
	if cfg.Data.Keywords != "keywords.json" {
		t.Errorf("keywords = %q, want default", cfg.Data.Keywords)
	}
	if !cfg.Editor.Snippets || !cfg.Editor.AutoPair {
		t.Errorf("editor = %+v", cfg.Editor)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	// auto_pair has the wrong type, so strict decoding fails
	path := writeConfig(t, `
[data]
catalog = "api.toml"
debounce_ms = 40

[editor]
auto_pair = "yes"
pairs = "("

[cli]
prompt = "$ "
no_color = true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Data.Catalog != "api.toml" || cfg.Data.DebounceMs != 40 {
		t.Errorf("data = %+v", cfg.Data)
	}
	if !cfg.Editor.AutoPair {
		t.Error("mistyped auto_pair should keep the default")
	}
	if cfg.Editor.Pairs != "(" {
		t.Errorf("pairs = %q", cfg.Editor.Pairs)
	}
	if cfg.CLI.Prompt != "$ " || !cfg.CLI.NoColor {
		t.Errorf("cli = %+v", cfg.CLI)
	}
}

func TestLoadConfigUnparsableFallsBack(t *testing.T) {
	path := writeConfig(t, "this is [not toml")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestValidateResetsUnsupportedValues(t *testing.T) {
	path := writeConfig(t, `
[highlight]
markup = "ansi"
enabled = false

[data]
debounce_ms = -5
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Highlight.Markup != MarkupColor {
		t.Errorf("markup = %q", cfg.Highlight.Markup)
	}
	if cfg.Highlight.Enabled {
		t.Error("enabled should be false")
	}
	if cfg.Data.DebounceMs != 150 {
		t.Errorf("debounce = %d", cfg.Data.DebounceMs)
	}
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[cli]\nprompt = \">> \"\n")
	cfg, used, err := LoadConfigWithPriority(path)
	if err != nil {
		t.Fatalf("LoadConfigWithPriority: %v", err)
	}
	if used != path {
		t.Errorf("used path = %q, want %q", used, path)
	}
	if cfg.CLI.Prompt != ">> " {
		t.Errorf("prompt = %q", cfg.CLI.Prompt)
	}
}

func TestUpdateSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := DefaultConfig()
	off, on, pairs := false, true, "{["
	if err := cfg.Update(path, &off, &on, &pairs); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Editor.AutoPair || !loaded.Editor.Snippets || loaded.Editor.Pairs != "{[" {
		t.Errorf("editor = %+v", loaded.Editor)
	}

	opts := loaded.EditorOptions()
	if opts.AutoPair || !opts.Snippets || opts.PairOpeners != "{[" || !opts.Highlight {
		t.Errorf("options = %+v", opts)
	}
}
