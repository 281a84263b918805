package ir

import (
	"fmt"
	"strings"
)

type (
	// Stmt is the closed family of IR statements. Statements carry their
	// position in the enclosing method body.
	Stmt interface {
		fmt.Stringer
		// Index is the statement's position in program order.
		Index() int
		// Def returns the variable the statement defines, if any.
		Def() (*Var, bool)
		// Uses returns the expressions the statement reads.
		Uses() []Exp

		setIndex(int)
	}

	stmt struct {
		index int
	}

	// Assign binds the value of an expression to a local.
	Assign struct {
		stmt
		LHS *Var
		RHS Exp
	}

	// If transfers control to Target when its condition holds, and falls
	// through otherwise.
	If struct {
		stmt
		Cond   *BinaryExp
		Target int
	}

	// Goto transfers control unconditionally.
	Goto struct {
		stmt
		Target int
	}

	// SwitchCase pairs a case label with its branch target.
	SwitchCase struct {
		Value  int
		Target int
	}

	// Switch branches on an integer discriminant.
	Switch struct {
		stmt
		Var     *Var
		Cases   []SwitchCase
		Default int
	}

	// Invoke calls a method, optionally binding its result.
	Invoke struct {
		stmt
		Result *Var
		Call   *InvokeExp
	}

	// Return leaves the method, optionally with a value.
	Return struct {
		stmt
		Value Exp
	}

	// Nop has no effect.
	Nop struct {
		stmt
	}
)

func (s *stmt) Index() int     { return s.index }
func (s *stmt) setIndex(i int) { s.index = i }

func (s *stmt) Def() (*Var, bool) { return nil, false }
func (s *stmt) Uses() []Exp       { return nil }

func (s *Assign) Def() (*Var, bool) { return s.LHS, true }
func (s *Assign) Uses() []Exp       { return []Exp{s.RHS} }

func (s *If) Uses() []Exp { return []Exp{s.Cond} }

func (s *Switch) Uses() []Exp { return []Exp{s.Var} }

func (s *Invoke) Def() (*Var, bool) { return s.Result, s.Result != nil }
func (s *Invoke) Uses() []Exp       { return []Exp{s.Call} }

func (s *Return) Uses() []Exp {
	if s.Value == nil {
		return nil
	}
	return []Exp{s.Value}
}

func (s *Assign) String() string {
	return fmt.Sprintf("%s = %s", s.LHS, s.RHS)
}

func (s *If) String() string {
	return fmt.Sprintf("if %s goto %d", s.Cond, s.Target)
}

func (s *Goto) String() string {
	return fmt.Sprintf("goto %d", s.Target)
}

func (s *Switch) String() string {
	cases := make([]string, 0, len(s.Cases)+1)
	for _, c := range s.Cases {
		cases = append(cases, fmt.Sprintf("%d: %d", c.Value, c.Target))
	}
	cases = append(cases, fmt.Sprintf("default: %d", s.Default))
	return fmt.Sprintf("switch %s {%s}", s.Var, strings.Join(cases, ", "))
}

func (s *Invoke) String() string {
	if s.Result == nil {
		return s.Call.String()
	}
	return fmt.Sprintf("%s = %s", s.Result, s.Call)
}

func (s *Return) String() string {
	if s.Value == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", s.Value)
}

func (s *Nop) String() string { return "nop" }
