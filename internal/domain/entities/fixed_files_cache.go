package entities

import "path/filepath"

// FixedFilesCache is an ordered, append-only set of canonical file paths
// already rewritten during the current run. One instance is shared by
// reference across all directory groups for the lifetime of the batch;
// it is never reset or copied.
type FixedFilesCache struct {
	paths []string
	seen  map[string]struct{}
}

// NewFixedFilesCache creates an empty cache.
func NewFixedFilesCache() *FixedFilesCache {
	return &FixedFilesCache{seen: make(map[string]struct{})}
}

// CanonicalPath joins a directory and file name into the normalized form
// used as a cache key. Keys always carry the full path, so two files with
// the same name in different directories never collide.
func CanonicalPath(dir, file string) string {
	return filepath.Clean(filepath.Join(dir, file))
}

// Contains reports whether the path was already rewritten this run.
func (it *FixedFilesCache) Contains(path string) bool {
	_, ok := it.seen[filepath.Clean(path)]
	return ok
}

// Add appends a path to the cache. Adding an existing path is a no-op.
func (it *FixedFilesCache) Add(path string) {
	cleaned := filepath.Clean(path)
	if _, ok := it.seen[cleaned]; ok {
		return
	}
	it.seen[cleaned] = struct{}{}
	it.paths = append(it.paths, cleaned)
}

// Paths returns the cached paths in insertion order.
func (it *FixedFilesCache) Paths() []string {
	out := make([]string, len(it.paths))
	copy(out, it.paths)
	return out
}

// Len returns the number of cached paths.
func (it *FixedFilesCache) Len() int { return len(it.paths) }
