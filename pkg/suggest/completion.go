package suggest

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Catalog maps context keys to candidate lists plus one default list.
// It is built once by NewCatalog and never mutated, so concurrent readers
// need no locking.
type Catalog struct {
	contexts map[string]*candidateIndex
	keys     []string
	defaults *candidateIndex
}

// NewCatalog builds an immutable catalog from decoded file data.
// Context keys are lower-cased; a key defined twice keeps the last definition.
func NewCatalog(data CatalogData) *Catalog {
	c := &Catalog{
		contexts: make(map[string]*candidateIndex, len(data.ContextSuggestions)),
		defaults: newCandidateIndex(data.DefaultSuggestions),
	}
	for _, entry := range data.ContextSuggestions {
		key := strings.ToLower(entry.Key)
		if key == "" {
			log.Warnf("Skipping context entry with empty key (%d values)", len(entry.Values))
			continue
		}
		if _, exists := c.contexts[key]; !exists {
			c.keys = append(c.keys, key)
		} else {
			log.Debugf("Context key '%s' redefined, keeping last definition", key)
		}
		c.contexts[key] = newCandidateIndex(entry.Values)
	}
	return c
}

// EmptyCatalog returns a catalog that resolves every lookup to nothing.
func EmptyCatalog() *Catalog {
	return NewCatalog(CatalogData{})
}

// Resolve filters the list for contextKey, or the default list when the key is
// empty or unknown, to entries whose lower-cased form starts with the
// lower-cased word. Order follows the source list. Never returns nil.
func (c *Catalog) Resolve(contextKey, word string) []string {
	if c == nil {
		return []string{}
	}
	lowerWord := strings.ToLower(word)
	if contextKey != "" {
		if idx, ok := c.contexts[strings.ToLower(contextKey)]; ok {
			return idx.match(lowerWord)
		}
	}
	return c.defaults.match(lowerWord)
}

// HasContext reports whether key selects a specialized list.
func (c *Catalog) HasContext(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.contexts[strings.ToLower(key)]
	return ok
}

// ContextKeys returns the known context keys in load order.
func (c *Catalog) ContextKeys() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.keys...)
}

// Stats returns catalog sizes.
func (c *Catalog) Stats() map[string]int {
	if c == nil {
		return map[string]int{"contexts": 0, "contextCandidates": 0, "defaultCandidates": 0}
	}
	total := 0
	for _, idx := range c.contexts {
		total += idx.size()
	}
	return map[string]int{
		"contexts":          len(c.contexts),
		"contextCandidates": total,
		"defaultCandidates": c.defaults.size(),
	}
}

// ShouldDisplay decides whether a candidate list is worth showing.
// Nothing is shown for an empty list or an empty word, nor when the only
// candidate already equals the typed word ignoring case.
func ShouldDisplay(candidates []string, word string) bool {
	if len(candidates) == 0 || word == "" {
		return false
	}
	if len(candidates) == 1 && strings.EqualFold(candidates[0], word) {
		return false
	}
	return true
}
