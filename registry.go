package namedlock

import "sync"

// entry pairs one OS lock primitive with the in-process mutex that guards
// it. Every NamedLock handle and every outstanding Guard for the same
// resource shares the same entry; refs counts them.
type entry struct {
	key  string
	mu   sync.Mutex
	raw  *rawLock
	refs int
}

// registry deduplicates lock primitives per process. At most one entry
// exists per resource identifier; the entry is evicted and its OS handle
// closed when the last reference is dropped.
type registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

var openedLocks = &registry{entries: make(map[string]*entry)}

// open returns the live entry for key, creating the OS primitive if no
// handle for key exists in this process. The returned entry carries one
// reference owned by the caller.
func (r *registry) open(key string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[key]; ok {
		e.refs++
		return e, nil
	}

	raw, err := openRaw(key)
	if err != nil {
		return nil, err
	}

	e := &entry{key: key, raw: raw, refs: 1}
	r.entries[key] = e
	return e, nil
}

// retain adds a reference to an entry that is known to be live.
func (r *registry) retain(e *entry) {
	r.mu.Lock()
	e.refs++
	r.mu.Unlock()
}

// release drops one reference. The last release evicts the entry and
// closes the OS handle, which on Unix also drops any lock still held on
// the descriptor.
func (r *registry) release(e *entry) {
	r.mu.Lock()
	e.refs--
	evict := e.refs == 0
	if evict {
		delete(r.entries, e.key)
	}
	r.mu.Unlock()

	if evict {
		_ = e.raw.close()
	}
}
