package ir

import "fmt"

// Method is a method declaration together with its body. Abstract methods
// have no body.
type Method struct {
	Class    string
	Name     string
	Params   []*Var
	Ret      Type
	Abstract bool
	Body     []Stmt
}

// NewMethod assembles a method and assigns program-order indices to its
// body statements.
func NewMethod(class, name string, params []*Var, ret Type, body []Stmt) *Method {
	for i, s := range body {
		s.setIndex(i)
	}
	return &Method{
		Class:  class,
		Name:   name,
		Params: params,
		Ret:    ret,
		Body:   body,
	}
}

// NewAbstractMethod declares a bodiless method used only as a dispatch
// anchor.
func NewAbstractMethod(class, name string, params []*Var, ret Type) *Method {
	return &Method{
		Class:    class,
		Name:     name,
		Params:   params,
		Ret:      ret,
		Abstract: true,
	}
}

func (m *Method) String() string {
	return m.Class + "." + m.Name
}

// Subsignature identifies the method within a class for dispatch. The IR
// has no overloading, so name and arity suffice.
func (m *Method) Subsignature() string {
	return fmt.Sprintf("%s/%d", m.Name, len(m.Params))
}

// ReturnValues collects the operands of the method's return statements,
// in program order.
func (m *Method) ReturnValues() []Exp {
	var vals []Exp
	for _, s := range m.Body {
		if r, ok := s.(*Return); ok && r.Value != nil {
			vals = append(vals, r.Value)
		}
	}
	return vals
}

// CallSites collects the invocation statements of the method body, in
// program order.
func (m *Method) CallSites() []*Invoke {
	var sites []*Invoke
	for _, s := range m.Body {
		if inv, ok := s.(*Invoke); ok {
			sites = append(sites, inv)
		}
	}
	return sites
}
