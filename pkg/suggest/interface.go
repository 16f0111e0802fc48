// Package suggest is the core, mapping a context key and the typed prefix to an ordered candidate list.
package suggest

// Resolver defines the lookup used by the editing session
type Resolver interface {
	// Resolve returns the candidates for contextKey whose lower-cased form
	// starts with the lower-cased word, in source order.
	Resolve(contextKey, word string) []string

	// Stats returns statistics about the loaded catalog
	Stats() map[string]int
}

// ContextEntry maps one context key to its candidate values.
type ContextEntry struct {
	Key    string   `json:"key" yaml:"key" toml:"key" msgpack:"key"`
	Values []string `json:"values" yaml:"values" toml:"values" msgpack:"values"`
}

// CatalogData is the static file schema of a suggestion catalog.
type CatalogData struct {
	ContextSuggestions []ContextEntry `json:"contextSuggestions" yaml:"contextSuggestions" toml:"contextSuggestions" msgpack:"contextSuggestions"`
	DefaultSuggestions []string       `json:"defaultSuggestions" yaml:"defaultSuggestions" toml:"defaultSuggestions" msgpack:"defaultSuggestions"`
}
