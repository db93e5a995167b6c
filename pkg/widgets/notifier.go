package widgets

import "sync"

// Notifier holds a single observer. Subscribing again replaces the
// previous observer; there is no removal bookkeeping.
type Notifier[T any] struct {
	mu sync.Mutex
	fn func(T)
}

// Subscribe sets the observer. nil removes it.
func (n *Notifier[T]) Subscribe(fn func(T)) {
	n.mu.Lock()
	n.fn = fn
	n.mu.Unlock()
}

// Notify calls the observer, if any, with v.
func (n *Notifier[T]) Notify(v T) {
	n.mu.Lock()
	fn := n.fn
	n.mu.Unlock()
	if fn != nil {
		fn(v)
	}
}
