package region

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Map translates raw region tokens into output group keys. Tokens without a
// mapping pass through unchanged; tokens mapped to an empty value are
// dropped from grouping.
type Map map[string]string

// LoadMap reads a region map from a JSON file of token -> group key pairs.
// A nil Map is valid and maps every token to itself.
func LoadMap(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read region map: %w", err)
	}
	var m Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse region map %s: %w", path, err)
	}
	return m, nil
}

// GroupKeys returns the distinct non-empty group keys the map can produce,
// sorted. Every one of these keys names an output group regardless of which
// tokens the catalog actually contains.
func (m Map) GroupKeys() []string {
	if len(m) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(m))
	keys := make([]string, 0, len(m))
	for _, mapped := range m {
		if mapped == "" {
			continue
		}
		if _, ok := seen[mapped]; ok {
			continue
		}
		seen[mapped] = struct{}{}
		keys = append(keys, mapped)
	}
	sort.Strings(keys)
	return keys
}

// Resolve returns the output group key for a raw token. The second return
// reports whether the token participates in grouping at all: tokens mapped
// to an empty value are excluded.
func (m Map) Resolve(token string) (string, bool) {
	if m == nil {
		return token, token != ""
	}
	mapped, ok := m[token]
	if !ok {
		return token, token != ""
	}
	return mapped, mapped != ""
}
