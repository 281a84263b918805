package livevars

import (
	"sort"
	"strings"

	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/utils"

	"github.com/benbjohnson/immutable"
)

// SetFact is a set of variables, the fact domain of liveness. Like the
// constant-propagation fact it is a persistent value.
type SetFact struct {
	m *immutable.Map[*ir.Var, struct{}]
}

func NewSetFact() SetFact {
	return SetFact{immutable.NewMap[*ir.Var, struct{}](utils.PointerHasher[*ir.Var]{})}
}

func (f SetFact) Contains(v *ir.Var) bool {
	_, ok := f.m.Get(v)
	return ok
}

func (f SetFact) Add(v *ir.Var) SetFact {
	if f.Contains(v) {
		return f
	}
	return SetFact{f.m.Set(v, struct{}{})}
}

func (f SetFact) Remove(v *ir.Var) SetFact {
	if !f.Contains(v) {
		return f
	}
	return SetFact{f.m.Delete(v)}
}

func (f SetFact) Union(o SetFact) SetFact {
	if o.m.Len() > f.m.Len() {
		f, o = o, f
	}
	o.ForEach(func(v *ir.Var) {
		f = f.Add(v)
	})
	return f
}

func (f SetFact) Size() int {
	return f.m.Len()
}

// ForEach visits all members in unspecified order.
func (f SetFact) ForEach(fn func(v *ir.Var)) {
	itr := f.m.Iterator()
	for !itr.Done() {
		v, _, _ := itr.Next()
		fn(v)
	}
}

// Eq compares sets structurally.
func (f SetFact) Eq(o SetFact) bool {
	if f.m.Len() != o.m.Len() {
		return false
	}
	eq := true
	f.ForEach(func(v *ir.Var) {
		if !o.Contains(v) {
			eq = false
		}
	})
	return eq
}

func (f SetFact) String() string {
	var names []string
	f.ForEach(func(v *ir.Var) {
		names = append(names, v.Name)
	})
	sort.Strings(names)
	return "{" + strings.Join(names, ", ") + "}"
}
