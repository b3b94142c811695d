package blueprint

import "sync"

// Named is implemented by blueprint records; the name is the registry key.
type Named interface {
	BlueprintName() string
}

// Registry keeps the blueprint records of one entity kind in registration order.
// Readers may run concurrently with Replace.
type Registry[B Named] struct {
	kind string

	mu     sync.RWMutex
	order  []string
	byName map[string]B
}

func NewRegistry[B Named](kind string) *Registry[B] {
	return &Registry[B]{
		kind:   kind,
		byName: make(map[string]B),
	}
}

func (r *Registry[B]) Kind() string {
	return r.kind
}

// Register appends records. Either all of them are added or, when a name is
// already taken (or repeated within bps), none is.
func (r *Registry[B]) Register(bps ...B) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkNames(r.byName, bps); err != nil {
		return err
	}
	for _, bp := range bps {
		name := bp.BlueprintName()
		r.order = append(r.order, name)
		r.byName[name] = bp
	}
	return nil
}

// Replace swaps the whole content for bps. On error the previous content stays.
func (r *Registry[B]) Replace(bps []B) error {
	order := make([]string, 0, len(bps))
	byName := make(map[string]B, len(bps))
	if err := r.checkNames(byName, bps); err != nil {
		return err
	}
	for _, bp := range bps {
		order = append(order, bp.BlueprintName())
		byName[bp.BlueprintName()] = bp
	}

	r.mu.Lock()
	r.order, r.byName = order, byName
	r.mu.Unlock()
	return nil
}

func (r *Registry[B]) checkNames(existing map[string]B, bps []B) error {
	seen := make(map[string]int, len(bps))
	for i, bp := range bps {
		name := bp.BlueprintName()
		if _, ok := existing[name]; ok {
			return ErrDuplicateName.WithData("kind", r.kind).WithData("name", name)
		}
		if first, ok := seen[name]; ok {
			return ErrDuplicateName.WithDataMap(map[string]any{
				"kind":  r.kind,
				"name":  name,
				"index": []int{first, i},
			})
		}
		seen[name] = i
	}
	return nil
}

func (r *Registry[B]) Get(name string) (B, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bp, ok := r.byName[name]
	return bp, ok
}

// Lookup is Get returning ErrNotFound for unknown names.
func (r *Registry[B]) Lookup(name string) (B, error) {
	bp, ok := r.Get(name)
	if !ok {
		return bp, ErrNotFound.WithData("kind", r.kind).WithData("name", name)
	}
	return bp, nil
}

// List returns a copy of the records in registration order.
func (r *Registry[B]) List() []B {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]B, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Registry[B]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry[B]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
