package search

// classEntry is the per-key record stored in a ParentMap: the predecessor
// key (shared by every member of the owning state's equivalence class) and
// the strategy-specific NodeInfo for this node. hasParent distinguishes a
// root (init) entry, whose parent key is meaningless, from every other
// entry.
type classEntry struct {
	parentKey string
	hasParent bool
	info      any
}

// ParentMap maps every seen state — keyed by Key(state), with every member
// of a state's rotation-equivalence class aliased to the same entry value —
// to its predecessor and search-strategy node info. All members of an
// equivalence class share the same entry value but each is a key, so
// lookups are O(1) regardless of which member is presented later.
//
// The map grows monotonically for the lifetime of one search: no entry is
// ever removed.
type ParentMap struct {
	entries map[string]classEntry
	states  map[string]State
}

// NewParentMap returns an empty ParentMap.
func NewParentMap() *ParentMap {
	return &ParentMap{
		entries: make(map[string]classEntry),
		states:  make(map[string]State),
	}
}

// Has reports whether key is already a member of some recorded
// equivalence class.
func (pm *ParentMap) Has(key string) bool {
	_, ok := pm.entries[key]
	return ok
}

// Info returns the NodeInfo recorded for key, if any.
func (pm *ParentMap) Info(key string) (any, bool) {
	e, ok := pm.entries[key]
	if !ok {
		return nil, false
	}
	return e.info, true
}

// State returns the specific state object stored under key, if any. This
// is the representative used when reconstructing a path: each key in an
// equivalence class was inserted alongside its own concrete (possibly
// differently-rotated) state object.
func (pm *ParentMap) State(key string) (State, bool) {
	s, ok := pm.states[key]
	return s, ok
}

// InsertRoot records every member of an equivalence class as a root (no
// parent), all sharing info. Used to seed the parent map with init's
// equivalence class at the start of a search.
func (pm *ParentMap) InsertRoot(keys []string, states []State, info any) {
	pm.insertClass(keys, states, "", false, info)
}

// InsertClass records every member of an equivalence class as children of
// parentKey, all sharing info. If any key in the class was already
// present, its entry (and every other member's) is overwritten — callers
// are responsible for only calling this when an update is actually wanted
// (see AlgInfo.GetNodeInfo's None-means-skip contract).
func (pm *ParentMap) InsertClass(keys []string, states []State, parentKey string, info any) {
	pm.insertClass(keys, states, parentKey, true, info)
}

func (pm *ParentMap) insertClass(keys []string, states []State, parentKey string, hasParent bool, info any) {
	e := classEntry{parentKey: parentKey, hasParent: hasParent, info: info}
	for i, k := range keys {
		pm.entries[k] = e
		pm.states[k] = states[i]
	}
}

// PathTo walks parent pointers from goalKey back to a root, then reverses
// the result so index 0 is the root's state and the last element is
// goalKey's own state. Panics (an implementation-bug assertion) if goalKey
// is not a recorded key or if the parent chain does not terminate at a
// root within len(entries)+1 steps (a cyclic parent map).
func (pm *ParentMap) PathTo(goalKey string) []State {
	limit := len(pm.entries) + 1
	var path []State
	cur := goalKey
	for i := 0; ; i++ {
		if i > limit {
			panic("search: cyclic parent map")
		}
		e, ok := pm.entries[cur]
		if !ok {
			panic("search: PathTo called with an unrecorded key")
		}
		s, ok := pm.states[cur]
		if !ok {
			panic("search: parent map entry missing its state")
		}
		path = append(path, s)
		if !e.hasParent {
			break
		}
		cur = e.parentKey
	}
	// path was built goal-to-root; reverse it in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
