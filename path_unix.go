//go:build unix

package namedlock

// NewWithPath creates or opens a named lock backed by the lock file at
// path, taken verbatim: no .lock suffix is appended and no name validation
// applies. Parent directories must exist.
//
// Two handles resolve to the same lock only if their paths are identical
// strings; NewWithPath does not normalize the path.
func NewWithPath(path string) (*NamedLock, error) {
	return open(path)
}
