package world

// Registry is a name-keyed collection of entity records. Names list in
// insertion order so script-visible enumeration is deterministic.
type Registry[T any] struct {
	order []string
	items map[string]T
}

// NewRegistry creates an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{items: make(map[string]T)}
}

// Add inserts or replaces the record for name.
func (r *Registry[T]) Add(name string, item T) {
	if _, exists := r.items[name]; !exists {
		r.order = append(r.order, name)
	}
	r.items[name] = item
}

// Get returns the record for name.
func (r *Registry[T]) Get(name string) (T, bool) {
	item, ok := r.items[name]
	return item, ok
}

// Replace swaps in a full replacement value for an existing name.
// Returns false without modifying anything when the name is unknown.
func (r *Registry[T]) Replace(name string, item T) bool {
	if _, ok := r.items[name]; !ok {
		return false
	}
	r.items[name] = item
	return true
}

// Remove deletes the record for name, if present.
func (r *Registry[T]) Remove(name string) {
	if _, ok := r.items[name]; !ok {
		return
	}
	delete(r.items, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered names in insertion order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of records.
func (r *Registry[T]) Len() int {
	return len(r.items)
}
