package search

import (
	"sync"

	"github.com/OKNG/wikipedia-solver/domain/wiki"
)

// frontierItem is one not-yet-expanded article in a search direction. Items
// are immutable once created; expansion builds new items, never mutates.
type frontierItem struct {
	article string   // display form
	path    []string // titles from the direction's root to article, inclusive
	depth   int
}

// direction holds one side's search state. The queue is confined to the
// direction's own round goroutine; the visited set is additionally read by
// the opposite direction's meeting check, hence the lock inside visitedSet.
type direction struct {
	name    string
	queue   []frontierItem
	visited *visitedSet
}

// newDirection seeds a direction with its root article at depth 0.
func newDirection(name, root string) *direction {
	d := &direction{
		name:    name,
		visited: newVisitedSet(),
	}
	path := []string{root}
	d.visited.add(wiki.Normalize(root), path)
	d.queue = append(d.queue, frontierItem{article: root, path: path, depth: 0})
	return d
}

// visitedSet records, per normalized title, the first path by which this
// direction reached it. Entries are final once written: add refuses
// overwrites, so the recorded path for a title never changes mid-search.
type visitedSet struct {
	mu    sync.RWMutex
	paths map[string][]string
}

func newVisitedSet() *visitedSet {
	return &visitedSet{paths: make(map[string][]string)}
}

// add records path for key and reports true, or reports false when key was
// already visited.
func (v *visitedSet) add(key string, path []string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, seen := v.paths[key]; seen {
		return false
	}
	v.paths[key] = path
	return true
}

// get returns the recorded path for key. Safe to call from the opposite
// direction while this one is writing.
func (v *visitedSet) get(key string) ([]string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	path, ok := v.paths[key]
	return path, ok
}

func (v *visitedSet) len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.paths)
}

// reversed returns a new slice with path in root-last order.
func reversed(path []string) []string {
	out := make([]string, len(path))
	for i, title := range path {
		out[len(path)-1-i] = title
	}
	return out
}
