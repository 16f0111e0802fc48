package highlight

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// KeywordColor is one token and the style tag it is painted with.
type KeywordColor struct {
	Key   string `json:"key" yaml:"key" toml:"key" msgpack:"key"`
	Color string `json:"color" yaml:"color" toml:"color" msgpack:"color"`
}

// KeywordData is the static file schema of the keyword style map.
type KeywordData struct {
	Keywords  []KeywordColor `json:"keywords" yaml:"keywords" toml:"keywords" msgpack:"keywords"`
	Functions []KeywordColor `json:"functions" yaml:"functions" toml:"functions" msgpack:"functions"`
}

// StyleMap maps literal tokens to style tags in load order: keywords first,
// then functions. A token defined again keeps its first position and takes
// the later color. Immutable after NewStyleMap.
type StyleMap struct {
	entries *orderedmap.OrderedMap[string, string]
}

// NewStyleMap builds the map from decoded file data. Entries with an empty
// key are skipped.
func NewStyleMap(data KeywordData) *StyleMap {
	entries := orderedmap.New[string, string](len(data.Keywords) + len(data.Functions))
	for _, group := range [][]KeywordColor{data.Keywords, data.Functions} {
		for _, kc := range group {
			if kc.Key == "" {
				continue
			}
			entries.Set(kc.Key, kc.Color)
		}
	}
	return &StyleMap{entries: entries}
}

// Len returns the number of styled tokens.
func (m *StyleMap) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Color returns the style tag for key.
func (m *StyleMap) Color(key string) (string, bool) {
	if m == nil || m.entries == nil {
		return "", false
	}
	return m.entries.Get(key)
}

// Each calls fn for every entry in map order.
func (m *StyleMap) Each(fn func(key, color string)) {
	if m == nil || m.entries == nil {
		return
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
