// Package dictionary loads the catalog and keyword data files and watches
// them for changes.
package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/bastiangx/codeassist/pkg/highlight"
	"github.com/bastiangx/codeassist/pkg/suggest"
)

// LoadCatalogData decodes a suggestion catalog file
func LoadCatalogData(path string) (suggest.CatalogData, error) {
	var data suggest.CatalogData
	if err := decodeFile(path, &data); err != nil {
		return suggest.CatalogData{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return data, nil
}

// LoadCatalog decodes a catalog file and indexes it
func LoadCatalog(path string) (*suggest.Catalog, error) {
	data, err := LoadCatalogData(path)
	if err != nil {
		return nil, err
	}
	catalog := suggest.NewCatalog(data)
	stats := catalog.Stats()
	log.Debugf("Loaded catalog %s: %d contexts, %d context candidates, %d defaults",
		path, stats["contexts"], stats["contextCandidates"], stats["defaultCandidates"])
	return catalog, nil
}

// LoadKeywordData decodes a keyword color file
func LoadKeywordData(path string) (highlight.KeywordData, error) {
	var data highlight.KeywordData
	if err := decodeFile(path, &data); err != nil {
		return highlight.KeywordData{}, fmt.Errorf("failed to load keywords: %w", err)
	}
	return data, nil
}

// LoadKeywords decodes a keyword color file into a style map
func LoadKeywords(path string) (*highlight.StyleMap, error) {
	data, err := LoadKeywordData(path)
	if err != nil {
		return nil, err
	}
	styles := highlight.NewStyleMap(data)
	log.Debugf("Loaded keywords %s: %d styled entries", path, styles.Len())
	return styles, nil
}

// decodeFile reads path and decodes it by extension into v
func decodeFile(path string, v any) error {
	if path == "" {
		return fmt.Errorf("no file path given")
	}
	format, err := DetectFileFormat(path)
	if err != nil {
		return err
	}
	if err := ValidateFileFormat(path, format); err != nil {
		return err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := Decode(format, raw, v); err != nil {
		return fmt.Errorf("failed to parse %s as %s: %w", path, format, err)
	}
	return nil
}

// Decode unmarshals raw in the given format into v
func Decode(format FileFormat, raw []byte, v any) error {
	switch format {
	case FormatJSON:
		return json.Unmarshal(raw, v)
	case FormatYAML:
		return yaml.Unmarshal(raw, v)
	case FormatTOML:
		_, err := toml.Decode(string(raw), v)
		return err
	case FormatMsgpack:
		return msgpack.Unmarshal(raw, v)
	}
	return fmt.Errorf("unsupported format: %v", format)
}

// Encode marshals v in the given format. Used to export data files.
func Encode(format FileFormat, v any) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(v, "", "  ")
	case FormatYAML:
		return yaml.Marshal(v)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatMsgpack:
		return msgpack.Marshal(v)
	}
	return nil, fmt.Errorf("unsupported format: %v", format)
}
