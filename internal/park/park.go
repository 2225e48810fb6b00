package park

import "github.com/huandu/skiplist"

// New creates an empty park.
func New[T any]() Park[T] {
	return Park[T]{l: skiplist.New(skiplist.Uint64)}
}

// Park is an ordered store of suspended values keyed by task identity.
type Park[T any] struct {
	l *skiplist.SkipList
}

// Insert parks v under id and returns true.
// Returns false and leaves the park untouched if id is already parked.
func (p Park[T]) Insert(id uint64, v T) (inserted bool) {
	if p.l.Get(id) != nil {
		return false
	}
	p.l.Set(id, v)
	return true
}

// Has reports whether id is parked.
func (p Park[T]) Has(id uint64) bool {
	return p.l.Get(id) != nil
}

// Remove unparks and returns the value stored under id.
func (p Park[T]) Remove(id uint64) (v T, ok bool) {
	e := p.l.Remove(id)
	if e == nil {
		return v, false
	}
	return e.Value.(T), true
}

// Len returns the number of parked values.
func (p Park[T]) Len() int {
	return p.l.Len()
}

// Drain removes every parked value in ascending id order
// executing fn for each.
func (p Park[T]) Drain(fn func(id uint64, v T)) {
	for e := p.l.RemoveFront(); e != nil; e = p.l.RemoveFront() {
		fn(e.Key().(uint64), e.Value.(T))
	}
}
