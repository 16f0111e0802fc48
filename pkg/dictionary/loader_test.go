package dictionary

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/bastiangx/codeassist/pkg/highlight"
	"github.com/bastiangx/codeassist/pkg/suggest"
)

const (
	catalogJSON = `{
  "contextSuggestions": [
    {"key": "Debug", "values": ["Log", "LogWarning"]},
    {"key": "transform", "values": ["position", "rotation"]}
  ],
  "defaultSuggestions": ["void", "return"]
}`
	catalogYAML = `contextSuggestions:
  - key: Debug
    values: [Log, LogWarning]
  - key: transform
    values: [position, rotation]
defaultSuggestions: [void, return]
`
	catalogTOML = `defaultSuggestions = ["void", "return"]

[[contextSuggestions]]
key = "Debug"
values = ["Log", "LogWarning"]

[[contextSuggestions]]
key = "transform"
values = ["position", "rotation"]
`
	keywordsJSON = `{
  "keywords": [{"key": "if", "color": "#569cd6"}, {"key": "return", "color": "#569cd6"}],
  "functions": [{"key": "Debug.Log", "color": "#dcdcaa"}]
}`
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func wantCatalogData() suggest.CatalogData {
	return suggest.CatalogData{
		ContextSuggestions: []suggest.ContextEntry{
			{Key: "Debug", Values: []string{"Log", "LogWarning"}},
			{Key: "transform", Values: []string{"position", "rotation"}},
		},
		DefaultSuggestions: []string{"void", "return"},
	}
}

func TestLoadCatalogFormats(t *testing.T) {
	dir := t.TempDir()
	packed, err := Encode(FormatMsgpack, wantCatalogData())
	if err != nil {
		t.Fatalf("encode msgpack: %v", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"catalog.json", catalogJSON},
		{"catalog.yaml", catalogYAML},
		{"catalog.yml", catalogYAML},
		{"catalog.toml", catalogTOML},
		{"catalog.msgpack", string(packed)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.name, tt.content)
			data, err := LoadCatalogData(path)
			if err != nil {
				t.Fatalf("LoadCatalogData: %v", err)
			}
			if !reflect.DeepEqual(data, wantCatalogData()) {
				t.Errorf("data = %+v", data)
			}

			catalog, err := LoadCatalog(path)
			if err != nil {
				t.Fatalf("LoadCatalog: %v", err)
			}
			if got := catalog.Resolve("debug", "logw"); !reflect.DeepEqual(got, []string{"LogWarning"}) {
				t.Errorf("Resolve = %v", got)
			}
		})
	}
}

func TestLoadKeywords(t *testing.T) {
	path := writeFile(t, t.TempDir(), "keywords.json", keywordsJSON)
	styles, err := LoadKeywords(path)
	if err != nil {
		t.Fatalf("LoadKeywords: %v", err)
	}
	if styles.Len() != 3 {
		t.Errorf("Len = %d, want 3", styles.Len())
	}
	if c, ok := styles.Color("Debug.Log"); !ok || c != "#dcdcaa" {
		t.Errorf("Color(Debug.Log) = %q, %v", c, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadCatalog(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want ErrNotExist", err)
	}
	if _, err := LoadCatalog(""); err == nil {
		t.Error("empty path should fail")
	}
	if _, err := LoadCatalog(writeFile(t, dir, "catalog.txt", "void")); err == nil {
		t.Error("unknown extension should fail")
	}
	if _, err := LoadCatalog(writeFile(t, dir, "bad.json", `{"defaultSuggestions": [`)); err == nil {
		t.Error("malformed json should fail")
	}
	if _, err := LoadKeywords(writeFile(t, dir, "bad.toml", "keywords = 3")); err == nil {
		t.Error("mistyped toml should fail")
	}
	if _, err := LoadCatalog(writeFile(t, dir, "empty.json", "")); err == nil {
		t.Error("empty file should fail")
	}
}

func TestDetectFileFormat(t *testing.T) {
	tests := []struct {
		name string
		want FileFormat
	}{
		{"a.json", FormatJSON},
		{"a.YAML", FormatYAML},
		{"dir/a.yml", FormatYAML},
		{"a.toml", FormatTOML},
		{"a.mpk", FormatMsgpack},
		{"a.bin", FormatUnknown},
	}
	for _, tt := range tests {
		got, err := DetectFileFormat(tt.name)
		if got != tt.want {
			t.Errorf("DetectFileFormat(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if (err != nil) != (tt.want == FormatUnknown) {
			t.Errorf("DetectFileFormat(%q) err = %v", tt.name, err)
		}
	}
}

func TestEncodeRoundTripKeywords(t *testing.T) {
	data := highlight.KeywordData{Keywords: []highlight.KeywordColor{{Key: "if", Color: "blue"}}}
	for _, f := range []FileFormat{FormatJSON, FormatYAML, FormatTOML, FormatMsgpack} {
		raw, err := Encode(f, data)
		if err != nil {
			t.Fatalf("Encode(%v): %v", f, err)
		}
		var got highlight.KeywordData
		if err := Decode(f, raw, &got); err != nil {
			t.Fatalf("Decode(%v): %v", f, err)
		}
		if len(got.Keywords) != 1 || got.Keywords[0] != data.Keywords[0] {
			t.Errorf("%v: got %+v", f, got)
		}
	}
}

func TestWatchReportsChanges(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "catalog.json", catalogJSON)
	writeFile(t, dir, "other.json", "{}")

	ctx, cancel := context.WithCancel(context.Background())
	var (
		mu      sync.Mutex
		changed []string
	)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{catalog}, 20*time.Millisecond, func(path string) {
			mu.Lock()
			changed = append(changed, path)
			mu.Unlock()
		})
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)
	writeFile(t, dir, "other.json", `{"x": 1}`)
	writeFile(t, dir, "catalog.json", catalogYAML)
	writeFile(t, dir, "catalog.json", catalogJSON)

	deadline := time.After(3 * time.Second)
	for {
		mu.Lock()
		n := len(changed)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no change reported")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	want, _ := filepath.Abs(catalog)
	for _, p := range changed {
		if p != want {
			t.Errorf("unexpected path %s", p)
		}
	}
}

func TestWatchNoPaths(t *testing.T) {
	if err := Watch(context.Background(), nil, 0, func(string) {}); err == nil {
		t.Error("expected error for empty path list")
	}
}
