package romset

import (
	"path/filepath"
	"strings"

	"dat2lpl/internal/dat"
)

// entrySeparator joins an archive path with its in-archive entry name in the
// composite reference emitted to playlists.
const entrySeparator = "#"

// Resolver constructs on-disk paths for a game's primary ROM under a given
// root, archive format, and storage convention. Resolution is pure string
// construction: no filesystem access is performed and no error is raised
// for targets that do not exist.
type Resolver struct {
	root    string
	format  ArchiveFormat
	mode    StorageMode
	parents map[string]string
}

// SplitEntryPath splits a composite "archive#entry" reference into the
// on-disk archive path and the in-archive entry name. A bare path is
// returned unchanged with an empty entry.
func SplitEntryPath(ref string) (string, string) {
	if i := strings.LastIndex(ref, entrySeparator); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// NewResolver builds a resolver for one catalog. The parent index is only
// consulted in merged mode, where clone entries collapse into their
// parent's archive.
func NewResolver(root string, format ArchiveFormat, mode StorageMode, parents map[string]string) *Resolver {
	return &Resolver{root: root, format: format, mode: mode, parents: parents}
}

// Resolve returns the path reference for the game's first ROM. The second
// return is false when the game has no ROM entries and cannot be resolved.
//
// Loose files resolve to a bare path. Archived sets resolve to a composite
// "archive#entry" reference, the form the consuming front-end uses to
// address files inside archives.
func (r *Resolver) Resolve(game dat.Game) (string, bool) {
	if len(game.ROMs) == 0 {
		return "", false
	}
	rom := game.ROMs[0]

	if r.mode == ModeMerged {
		return r.resolveMerged(game, rom), true
	}
	return r.resolveSplit(rom), true
}

// resolveSplit handles split and non-merged sets, where the catalog ROM name
// already encodes any internal subgrouping.
func (r *Resolver) resolveSplit(rom dat.ROM) string {
	rel := filepath.FromSlash(rom.Name)
	if r.format == ArchiveNone {
		return filepath.Join(r.root, rel)
	}
	archive := strings.TrimSuffix(rel, filepath.Ext(rel)) + r.format.Extension()
	return filepath.Join(r.root, archive) + entrySeparator + filepath.Base(rel)
}

// resolveMerged collapses clones into the parent archive (or directory).
func (r *Resolver) resolveMerged(game dat.Game, rom dat.ROM) string {
	dir := game.Name
	if game.CloneOfID != "" {
		if parent, ok := r.parents[game.CloneOfID]; ok {
			dir = parent
		}
	}
	rel := filepath.FromSlash(rom.Name)
	if r.format == ArchiveNone {
		return filepath.Join(r.root, dir, rel)
	}
	return filepath.Join(r.root, dir+r.format.Extension()) + entrySeparator + rel
}
