package store

// Store owns the current snapshot for a long-running process (the TUI or the
// headless watch loop). Commands replace the snapshot atomically, persist it,
// and then invoke every observer synchronously with the committed snapshot.
// Conflict and reminder recomputation hang off these observer calls rather
// than any hidden reactive machinery.
//
// The store is not safe for concurrent use; all access is expected to happen
// on a single event loop.
type Store struct {
	path      string
	snap      Snapshot
	observers []func(Snapshot)
}

// Open loads the task file at path into a new Store.
func Open(path string) (*Store, error) {
	tasks, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, snap: Snapshot{}.Load(tasks)}, nil
}

// Path returns the task file path backing the store.
func (s *Store) Path() string { return s.path }

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot { return s.snap.Clone() }

// Subscribe registers an observer invoked after every committed change.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.observers = append(s.observers, fn)
}

// Apply commits the result of op as the new snapshot, persists it, and
// notifies observers. Persistence is fire-and-forget relative to the commit:
// a failed write never rolls the snapshot back, and the error is returned
// for reporting only.
func (s *Store) Apply(op func(Snapshot) Snapshot) (Snapshot, error) {
	s.snap = op(s.snap)
	err := WriteFile(s.path, s.snap.Tasks)
	for _, fn := range s.observers {
		fn(s.snap)
	}
	return s.snap.Clone(), err
}

// Reload replaces the snapshot from disk, e.g. after an external change
// detected by the file watcher. Observers are notified.
func (s *Store) Reload() error {
	tasks, err := ReadFile(s.path)
	if err != nil {
		return err
	}
	s.snap = Snapshot{}.Load(tasks)
	for _, fn := range s.observers {
		fn(s.snap)
	}
	return nil
}
