package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestClampOffset(t *testing.T) {
	tests := []struct {
		s      string
		offset int
		want   int
	}{
		{"abc", -1, 0},
		{"abc", 0, 0},
		{"abc", 2, 2},
		{"abc", 9, 3},
		{"", 4, 0},
		{"aé", 2, 1}, // inside é
		{"aé", 3, 3},
	}
	for _, tt := range tests {
		if got := ClampOffset(tt.s, tt.offset); got != tt.want {
			t.Errorf("ClampOffset(%q, %d) = %d, want %d", tt.s, tt.offset, got, tt.want)
		}
	}
}

func TestIsIdentRune(t *testing.T) {
	for _, r := range "aZ_9ö" {
		if !IsIdentRune(r) {
			t.Errorf("IsIdentRune(%q) = false", r)
		}
	}
	for _, r := range " .(;\t" {
		if IsIdentRune(r) {
			t.Errorf("IsIdentRune(%q) = true", r)
		}
	}
}

func TestCreateRankList(t *testing.T) {
	if got := CreateRankList(3); !reflect.DeepEqual(got, []uint16{1, 2, 3}) {
		t.Errorf("CreateRankList(3) = %v", got)
	}
	if got := CreateRankList(0); len(got) != 0 || got == nil {
		t.Errorf("CreateRankList(0) = %#v", got)
	}
}

func TestResolveDataFile(t *testing.T) {
	execDir := t.TempDir()
	configDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(execDir, "data"), 0755); err != nil {
		t.Fatal(err)
	}
	inData := filepath.Join(execDir, "data", "catalog.json")
	inConfig := filepath.Join(configDir, "keywords.yaml")
	for _, p := range []string{inData, inConfig} {
		if err := os.WriteFile(p, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	pr := NewPathResolverAt(execDir, t.TempDir(), configDir)
	if got := pr.ResolveDataFile("catalog.json"); got != inData {
		t.Errorf("catalog resolved to %s, want %s", got, inData)
	}
	if got := pr.ResolveDataFile("keywords.yaml"); got != inConfig {
		t.Errorf("keywords resolved to %s, want %s", got, inConfig)
	}
	if got := pr.ResolveDataFile(inData); got != inData {
		t.Errorf("absolute path changed: %s", got)
	}
	cwd, _ := os.Getwd()
	if got := pr.ResolveDataFile("missing-x.json"); got != filepath.Join(cwd, "missing-x.json") {
		t.Errorf("missing file resolved to %s", got)
	}
}

func TestGetConfigPath(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "codeassist")
	pr := NewPathResolverAt(t.TempDir(), t.TempDir(), configDir)
	if got := pr.GetConfigPath("codeassist.toml"); got != filepath.Join(configDir, "codeassist.toml") {
		t.Errorf("GetConfigPath = %s", got)
	}
	if !FileExists(configDir) {
		t.Error("config dir not created")
	}
}

func TestTOMLRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	if err := os.WriteFile(path, []byte("[a]\nn = 3\nb = true\ns = \"x\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	data, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatal(err)
	}
	section, ok := ExtractSection(data, "a")
	if !ok {
		t.Fatal("section a missing")
	}
	if n, ok := ExtractInt64(section, "n"); !ok || n != 3 {
		t.Errorf("n = %d, %v", n, ok)
	}
	if b, ok := ExtractBool(section, "b"); !ok || !b {
		t.Errorf("b = %v, %v", b, ok)
	}
	if s, ok := ExtractString(section, "s"); !ok || s != "x" {
		t.Errorf("s = %q, %v", s, ok)
	}
	if _, ok := ExtractString(section, "n"); ok {
		t.Error("n is not a string")
	}
}
