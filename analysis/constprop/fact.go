package constprop

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils"

	"github.com/benbjohnson/immutable"
)

// Fact maps variables to lattice values; unmapped variables are Undef.
// Facts are persistent values: Update and Remove return new facts and
// never alias mutable state between the IN and OUT side of a node.
type Fact struct {
	m *immutable.Map[*ir.Var, Value]
}

func NewFact() Fact {
	return Fact{immutable.NewMap[*ir.Var, Value](utils.PointerHasher[*ir.Var]{})}
}

// Get returns the value bound to v, Undef if unbound.
func (f Fact) Get(v *ir.Var) Value {
	if val, ok := f.m.Get(v); ok {
		return val
	}
	return Undef()
}

// Update binds v to val. Binding Undef removes the entry, keeping facts
// canonical so that structural equality is exact.
func (f Fact) Update(v *ir.Var, val Value) Fact {
	if val.IsUndef() {
		return f.Remove(v)
	}
	return Fact{f.m.Set(v, val)}
}

// Remove drops the binding of v.
func (f Fact) Remove(v *ir.Var) Fact {
	if _, ok := f.m.Get(v); !ok {
		return f
	}
	return Fact{f.m.Delete(v)}
}

func (f Fact) Size() int {
	return f.m.Len()
}

// ForEach visits all bindings in unspecified order.
func (f Fact) ForEach(fn func(v *ir.Var, val Value)) {
	itr := f.m.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		fn(k, v)
	}
}

// Eq compares facts structurally.
func (f Fact) Eq(o Fact) bool {
	if f.m.Len() != o.m.Len() {
		return false
	}
	eq := true
	f.ForEach(func(v *ir.Var, val Value) {
		if o.Get(v) != val {
			eq = false
		}
	})
	return eq
}

func (f Fact) String() string {
	var entries []string
	f.ForEach(func(v *ir.Var, val Value) {
		entries = append(entries, fmt.Sprintf("%s ↦ %s", v, val))
	})
	sort.Strings(entries)
	return "[" + strings.Join(entries, ", ") + "]"
}
