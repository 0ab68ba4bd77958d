// Package romset resolves catalog file entries to on-disk path references.
//
// A ROM collection is laid out according to two orthogonal settings: the
// archive format (loose files, zip, or 7z) and the storage convention
// (non-merged, split, or merged). The resolver combines both with a storage
// root to build the path string a playlist entry should point at, without
// requiring the target to exist.
package romset
