package show

import "container/list"

// Registry holds the live bundles in insertion order.
type Registry struct {
	bundles *list.List
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	r := new(Registry)
	r.bundles = list.New()
	return r
}

// Add inserts a bundle at the back.
func (r *Registry) Add(b *Bundle) {
	r.bundles.PushBack(b)
}

// Len returns the number of live bundles.
func (r *Registry) Len() int {
	return r.bundles.Len()
}

// Each visits every bundle in insertion order.
func (r *Registry) Each(fn func(*Bundle)) {
	for e := r.bundles.Front(); e != nil; e = e.Next() {
		fn(e.Value.(*Bundle))
	}
}

// Sweep visits every bundle and removes those for which keep returns false.
// Removals are applied after the pass. It returns the number of bundles
// removed.
func (r *Registry) Sweep(keep func(*Bundle) bool) int {
	toDelete := make([]*list.Element, 0)
	for e := r.bundles.Front(); e != nil; e = e.Next() {
		if !keep(e.Value.(*Bundle)) {
			toDelete = append(toDelete, e)
		}
	}

	for _, e := range toDelete {
		r.bundles.Remove(e)
	}
	return len(toDelete)
}
