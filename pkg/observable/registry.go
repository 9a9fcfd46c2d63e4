package observable

import (
	"github.com/selectdb/observable_list/pkg/xmetrics"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/btree"
)

const registryDegree = 32

// Mode is the ownership a registry has over an observer.
type Mode int

const (
	// Strong registrations keep the observer reachable until unregistered.
	Strong Mode = iota
	// Weak registrations never extend the observer's lifetime; once the
	// observer is collected its entry is skipped and purged lazily.
	Weak
)

// Mode Stringer
func (m Mode) String() string {
	switch m {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	default:
		return "unknown"
	}
}

type registration struct {
	strong ItemsObserver
	ref    *weakRef // nil for strong registrations
}

func (r *registration) resolve() (ItemsObserver, bool) {
	if r.ref == nil {
		return r.strong, true
	}
	v, ok := r.ref.value()
	if !ok {
		return nil, false
	}
	return v.(ItemsObserver), true
}

func (r *registration) stale() bool {
	return r.ref != nil && !r.ref.alive()
}

func (r *registration) matches(o ItemsObserver) bool {
	if r.ref == nil {
		return sameObserver(r.strong, o)
	}
	return r.ref.refersTo(o)
}

// Registry is an append-only list of observer registrations kept in
// registration order. The same observer may be registered more than once;
// every registration is delivered and stored independently.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	name    string
	entries *btree.Map[uint64, *registration]
	nextSeq uint64
}

func NewRegistry(name string) *Registry {
	return &Registry{
		name:    name,
		entries: btree.NewMap[uint64, *registration](registryDegree),
	}
}

func (r *Registry) Name() string {
	return r.name
}

// Len returns the number of stored registrations, including stale weak ones
// not purged yet.
func (r *Registry) Len() int {
	return r.entries.Len()
}

// Register appends a registration for o. Observers that cannot be referenced
// weakly (non-pointers) are held strongly whatever the mode. Observers whose
// dynamic value is not comparable, such as func types, are ignored.
func (r *Registry) Register(o ItemsObserver, mode Mode) {
	if o == nil {
		log.Warnf("registry %s: ignore nil observer", r.name)
		return
	}
	if !comparableObserver(o) {
		log.Warnf("registry %s: ignore observer %T, it is not comparable and could never be unregistered", r.name, o)
		return
	}

	r.sweep()

	entry := &registration{}
	if mode == Weak {
		if ref, ok := newWeakRef(o); ok {
			entry.ref = ref
		} else {
			log.Debugf("registry %s: observer %T is not a pointer, hold it strongly", r.name, o)
			mode = Strong
		}
	}
	if entry.ref == nil {
		entry.strong = o
	}

	r.nextSeq++
	r.entries.Set(r.nextSeq, entry)
	xmetrics.Register(mode.String())
	log.Tracef("registry %s: register %T as %s, seq: %d", r.name, o, mode, r.nextSeq)
}

// Unregister removes the earliest registration of o, together with any stale
// weak registration met on the way. Unknown observers are ignored.
func (r *Registry) Unregister(o ItemsObserver) {
	r.unregister(o, false)
}

// UnregisterAll removes every registration of o.
func (r *Registry) UnregisterAll(o ItemsObserver) {
	r.unregister(o, true)
}

func (r *Registry) unregister(o ItemsObserver, all bool) {
	if o == nil {
		return
	}

	var removed, purged []uint64
	r.entries.Scan(func(seq uint64, entry *registration) bool {
		if entry.stale() {
			purged = append(purged, seq)
		} else if (all || len(removed) == 0) && entry.matches(o) {
			removed = append(removed, seq)
		}
		return true
	})
	r.delete(removed)
	r.delete(purged)

	xmetrics.Unregister(len(removed))
	xmetrics.PurgeStale(len(purged))
	log.Tracef("registry %s: unregister %T, removed: %d, purged: %d", r.name, o, len(removed), len(purged))
}

// Snapshot returns the live observers in registration order. The returned
// slice is a copy: registrations made or removed while it is being walked do
// not affect it. Stale weak registrations are dropped and purged.
func (r *Registry) Snapshot() []ItemsObserver {
	observers := make([]ItemsObserver, 0, r.entries.Len())
	var purged []uint64
	r.entries.Scan(func(seq uint64, entry *registration) bool {
		if o, ok := entry.resolve(); ok {
			observers = append(observers, o)
		} else {
			purged = append(purged, seq)
		}
		return true
	})
	r.delete(purged)
	xmetrics.PurgeStale(len(purged))

	return observers
}

func (r *Registry) sweep() {
	var purged []uint64
	r.entries.Scan(func(seq uint64, entry *registration) bool {
		if entry.stale() {
			purged = append(purged, seq)
		}
		return true
	})
	if len(purged) == 0 {
		return
	}

	r.delete(purged)
	xmetrics.PurgeStale(len(purged))
	log.Debugf("registry %s: purge %d stale observers", r.name, len(purged))
}

func (r *Registry) delete(seqs []uint64) {
	for _, seq := range seqs {
		r.entries.Delete(seq)
	}
}
