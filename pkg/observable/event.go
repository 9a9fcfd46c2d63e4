package observable

import "fmt"

type EventKind int

const (
	ItemInserted EventKind = iota
	ItemRemoved
	ItemChanged
	ItemsReloaded
)

// EventKind Stringer
func (k EventKind) String() string {
	switch k {
	case ItemInserted:
		return "inserted"
	case ItemRemoved:
		return "removed"
	case ItemChanged:
		return "changed"
	case ItemsReloaded:
		return "reloaded"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Event is one structural change of an ordered collection. Index is unused
// for ItemsReloaded.
type Event struct {
	Kind  EventKind
	Index int
}

func Inserted(index int) Event {
	return Event{Kind: ItemInserted, Index: index}
}

func Removed(index int) Event {
	return Event{Kind: ItemRemoved, Index: index}
}

func Changed(index int) Event {
	return Event{Kind: ItemChanged, Index: index}
}

func Reloaded() Event {
	return Event{Kind: ItemsReloaded, Index: -1}
}

func (e Event) String() string {
	if e.Kind == ItemsReloaded {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}
