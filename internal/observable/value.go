// Package observable provides a synchronous observer-list value holder.
package observable

import "sync"

// Unsubscribe detaches a subscriber. Calling it more than once is harmless.
type Unsubscribe func()

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// Value holds a value of type T and notifies subscribers on every change.
//
// Subscribers run synchronously, in subscription order, with the complete new
// value. Writes are serialized so every subscriber observes the same ordered
// sequence of snapshots. A subscriber must not write to the Value it observes.
type Value[T any] struct {
	writeMu sync.Mutex

	mu          sync.RWMutex
	current     T
	subscribers []subscriber[T]
	nextID      uint64
}

// New creates a Value holding initial
func New[T any](initial T) *Value[T] {
	return &Value[T]{current: initial}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the value and notifies all subscribers
func (v *Value[T]) Set(value T) {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()
	v.store(value)
}

// Update computes the new value from the current one and notifies subscribers
func (v *Value[T]) Update(fn func(T) T) {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()
	v.store(fn(v.Get()))
}

// Locked runs fn while holding the write lock. fn receives the current value
// and a setter; it may call set zero or more times. This lets callers perform
// side effects (such as persisting) between reading and publishing a value
// without another writer interleaving.
func (v *Value[T]) Locked(fn func(current T, set func(T))) {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()
	fn(v.Get(), v.store)
}

// Subscribe registers fn and immediately calls it with the current value
func (v *Value[T]) Subscribe(fn func(T)) Unsubscribe {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subscribers = append(v.subscribers, subscriber[T]{id: id, fn: fn})
	current := v.current
	v.mu.Unlock()

	fn(current)

	var once sync.Once
	return func() {
		once.Do(func() { v.remove(id) })
	}
}

// SubscriberCount returns the number of attached subscribers
func (v *Value[T]) SubscriberCount() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.subscribers)
}

// store publishes value; callers must hold writeMu
func (v *Value[T]) store(value T) {
	v.mu.Lock()
	v.current = value
	subs := make([]subscriber[T], len(v.subscribers))
	copy(subs, v.subscribers)
	v.mu.Unlock()

	for _, s := range subs {
		s.fn(value)
	}
}

func (v *Value[T]) remove(id uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, s := range v.subscribers {
		if s.id == id {
			v.subscribers = append(v.subscribers[:i:i], v.subscribers[i+1:]...)
			return
		}
	}
}
