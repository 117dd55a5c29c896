package tracking

// Anchors keeps placed anchors in placement order, dropping the oldest once
// the capacity is reached.
type Anchors struct {
	capacity int
	nextID   int
	items    []Anchor
}

// NewAnchors returns an anchor set holding at most capacity anchors (at
// least one).
func NewAnchors(capacity int) *Anchors {
	if capacity < 1 {
		capacity = 1
	}
	return &Anchors{capacity: capacity}
}

// Place adds an anchor, assigning it the next ID.
func (a *Anchors) Place(anchor Anchor) Anchor {
	a.nextID++
	anchor.ID = a.nextID
	a.items = append(a.items, anchor)
	if over := len(a.items) - a.capacity; over > 0 {
		a.items = append(a.items[:0], a.items[over:]...)
	}
	return anchor
}

// List returns the retained anchors, oldest first.
func (a *Anchors) List() []Anchor {
	return append([]Anchor(nil), a.items...)
}

func (a *Anchors) Len() int { return len(a.items) }

// Clear removes all anchors.
func (a *Anchors) Clear() { a.items = a.items[:0] }
