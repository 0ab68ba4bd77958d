package playlist

import (
	"path/filepath"
	"strings"

	"dat2lpl/internal/region"
	"dat2lpl/internal/textutil"
)

// Entry is one resolved game ready for playlist serialization.
type Entry struct {
	Label string
	Path  string
	CRC   string
}

// Builder accumulates resolved entries into output groups, preserving
// catalog order within each group. Group file ordering follows the
// insertion order of first appearance; the "no region" group is tracked
// separately and always emitted last.
type Builder struct {
	split    bool
	order    []string
	groups   map[string][]Entry
	noRegion []Entry
	seen     map[string]map[string]struct{}
}

// NewBuilder creates a builder. With split disabled every entry lands in a
// single implicit group regardless of its region key.
func NewBuilder(split bool) *Builder {
	return &Builder{
		split:  split,
		groups: make(map[string][]Entry),
		seen:   make(map[string]map[string]struct{}),
	}
}

// EnsureGroup registers a group key without adding entries, fixing its
// position in the output ordering. World-tagged games rely on the full
// group set existing before they are distributed.
func (b *Builder) EnsureGroup(key string) {
	if !b.split || key == "" {
		return
	}
	if _, ok := b.groups[key]; !ok {
		b.groups[key] = make([]Entry, 0)
		b.seen[key] = make(map[string]struct{})
		b.order = append(b.order, key)
	}
}

// Add appends an entry to the named group. In split mode duplicate labels
// within a group are suppressed and an empty key routes to the "no region"
// group. With split disabled the key is ignored and every entry is kept:
// deduplication is a per-region-group rule only.
func (b *Builder) Add(key string, entry Entry) {
	if !b.split {
		if _, ok := b.groups[""]; !ok {
			b.groups[""] = make([]Entry, 0)
			b.order = append(b.order, "")
		}
		b.groups[""] = append(b.groups[""], entry)
		return
	}
	if key == "" {
		b.AddNoRegion(entry)
		return
	}
	b.EnsureGroup(key)
	if _, dup := b.seen[key][entry.Label]; dup {
		return
	}
	b.seen[key][entry.Label] = struct{}{}
	b.groups[key] = append(b.groups[key], entry)
}

// AddToAll appends an entry to every registered group. Used for
// World-tagged games, which belong to all region groups at once. With split
// disabled it is equivalent to a plain Add.
func (b *Builder) AddToAll(entry Entry) {
	if !b.split {
		b.Add("", entry)
		return
	}
	for _, key := range b.order {
		if _, dup := b.seen[key][entry.Label]; dup {
			continue
		}
		b.seen[key][entry.Label] = struct{}{}
		b.groups[key] = append(b.groups[key], entry)
	}
}

// AddNoRegion appends an entry to the "no region" group.
func (b *Builder) AddNoRegion(entry Entry) {
	b.noRegion = append(b.noRegion, entry)
}

// GroupKeys returns the registered group keys in output order.
func (b *Builder) GroupKeys() []string {
	return append([]string(nil), b.order...)
}

// Len returns the number of entries in the named group.
func (b *Builder) Len(key string) int {
	return len(b.groups[key])
}

// OutputFile pairs a playlist document with the file name it should be
// written to.
type OutputFile struct {
	Name     string
	Document Document
}

// Files serializes the accumulated groups into output files. outputName is
// the configured playlist path; in split mode each group derives its file
// name from it as "<base> (<group>)<ext>", with the group key sanitized for
// filesystem safety. headerDescription seeds the per-item db_name field.
func (b *Builder) Files(outputName, headerDescription string) []OutputFile {
	dbName := DBName(headerDescription)

	if !b.split {
		entries := b.groups[""]
		return []OutputFile{{Name: outputName, Document: buildDocument(entries, dbName)}}
	}

	ext := filepath.Ext(outputName)
	base := strings.TrimSuffix(outputName, ext)

	files := make([]OutputFile, 0, len(b.order)+1)
	for _, key := range b.order {
		safe := textutil.SanitizeFileName(key)
		name := base + " (" + safe + ")" + ext
		files = append(files, OutputFile{Name: name, Document: buildDocument(b.groups[key], dbName)})
	}
	if len(b.noRegion) > 0 {
		name := base + " (" + region.NoRegion + ")" + ext
		files = append(files, OutputFile{Name: name, Document: buildDocument(b.noRegion, dbName)})
	}
	return files
}

func buildDocument(entries []Entry, dbName string) Document {
	doc := NewDocument()
	for _, entry := range entries {
		doc.Items = append(doc.Items, Item{
			Path:     entry.Path,
			Label:    entry.Label,
			CorePath: detectCore,
			CoreName: detectCore,
			CRC32:    CRCField(entry.CRC),
			DBName:   dbName,
		})
	}
	return doc
}
