package glint

import (
	"fmt"
	"sort"
)

// Binding associates a key combination with an action identifier. The
// registry returns action IDs, never callbacks, so keys stay decoupled
// from behavior. A logical action may carry several bindings (a primary
// plus fallbacks), each at its own priority.
type Binding struct {
	Combo       Combination
	Action      string
	Description string
	Category    string
	Priority    int
}

// Registry is the priority-ordered binding table. When two bindings claim
// the same combination the higher priority wins; two bindings in the same
// category must not share a priority for the same combination, which is
// enforced at registration time.
type Registry struct {
	byCombo map[Combination][]Binding
	all     []Binding
}

// NewRegistry creates an empty binding registry.
func NewRegistry() *Registry {
	return &Registry{byCombo: make(map[Combination][]Binding)}
}

// Bind registers a binding. Duplicate priorities for the same combination
// within one category are configuration errors.
func (r *Registry) Bind(b Binding) error {
	if b.Action == "" {
		return fmt.Errorf("binding for %s has no action", b.Combo)
	}
	for _, existing := range r.byCombo[b.Combo] {
		if existing.Category == b.Category && existing.Priority == b.Priority {
			return fmt.Errorf("binding %s/%s: priority %d already taken by %s in category %q",
				b.Combo, b.Action, b.Priority, existing.Action, b.Category)
		}
	}
	r.byCombo[b.Combo] = append(r.byCombo[b.Combo], b)
	r.all = append(r.all, b)
	return nil
}

// MustBind is Bind for static tables; it panics on a conflict.
func (r *Registry) MustBind(b Binding) {
	if err := r.Bind(b); err != nil {
		panic(err)
	}
}

// BindToken parses the token and registers the binding. Convenient for
// config-driven tables.
func (r *Registry) BindToken(token, action, desc, category string, priority int) error {
	combo, ok := DecodeToken(token)
	if !ok {
		return fmt.Errorf("unrecognized key token %q", token)
	}
	return r.Bind(Binding{
		Combo:       combo,
		Action:      action,
		Description: desc,
		Category:    category,
		Priority:    priority,
	})
}

// Resolve returns the action bound to the combination, choosing the
// highest-priority binding when several apply.
func (r *Registry) Resolve(c Combination) (action string, ok bool) {
	candidates := r.byCombo[c]
	if len(candidates) == 0 {
		return "", false
	}
	best := candidates[0]
	for _, b := range candidates[1:] {
		if b.Priority > best.Priority {
			best = b
		}
	}
	return best.Action, true
}

// Unbind removes every binding for the combination. Used when a config
// file overrides a default table entry.
func (r *Registry) Unbind(c Combination) {
	delete(r.byCombo, c)
	kept := r.all[:0]
	for _, b := range r.all {
		if b.Combo != c {
			kept = append(kept, b)
		}
	}
	r.all = kept
}

// BindingsFor returns every combination bound to the action, ordered by
// descending priority (primary binding first).
func (r *Registry) BindingsFor(action string) []Binding {
	var out []Binding
	for _, b := range r.all {
		if b.Action == action {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}

// All returns every registered binding grouped by category, each group
// sorted by descending priority. Used by help output.
func (r *Registry) All() map[string][]Binding {
	out := make(map[string][]Binding)
	for _, b := range r.all {
		out[b.Category] = append(out[b.Category], b)
	}
	for cat := range out {
		group := out[cat]
		sort.Slice(group, func(i, j int) bool {
			if group[i].Priority != group[j].Priority {
				return group[i].Priority > group[j].Priority
			}
			return group[i].Action < group[j].Action
		})
	}
	return out
}
