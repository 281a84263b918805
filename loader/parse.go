package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cs-au-dk/fixpoint/ir"
)

// The statement syntax, one statement per body line:
//
//	nop
//	goto N
//	if x OP y goto N
//	switch x { 1: N, 2: M, default: K }
//	return
//	return x
//	call KIND Class.method(a, b)
//	v = EXP
//
// where EXP is an atom (variable or integer literal), a binary expression
// over atoms, "new Class", "(type) atom", "Base.field", "a[i]" or a call.
// Branch targets are zero-based line indices; the index one past the last
// line denotes the method exit.

func parseStmt(line string, env map[string]*ir.Var) (ir.Stmt, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "nop":
		return &ir.Nop{}, nil

	case strings.HasPrefix(line, "goto "):
		target, err := parseTarget(strings.TrimPrefix(line, "goto "))
		if err != nil {
			return nil, err
		}
		return &ir.Goto{Target: target}, nil

	case strings.HasPrefix(line, "if "):
		rest := strings.TrimPrefix(line, "if ")
		cond, targetPart, ok := cutLast(rest, " goto ")
		if !ok {
			return nil, fmt.Errorf("if without goto: %q", line)
		}
		target, err := parseTarget(targetPart)
		if err != nil {
			return nil, err
		}
		exp, err := parseExp(cond, env)
		if err != nil {
			return nil, err
		}
		bin, ok := exp.(*ir.BinaryExp)
		if !ok {
			return nil, fmt.Errorf("if condition must be a binary expression: %q", cond)
		}
		return &ir.If{Cond: bin, Target: target}, nil

	case strings.HasPrefix(line, "switch "):
		return parseSwitch(line, env)

	case line == "return":
		return &ir.Return{}, nil

	case strings.HasPrefix(line, "return "):
		val, err := parseAtom(strings.TrimPrefix(line, "return "), env)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Value: val}, nil

	case strings.HasPrefix(line, "call "):
		call, err := parseCall(line, env)
		if err != nil {
			return nil, err
		}
		return &ir.Invoke{Call: call}, nil
	}

	lhs, rhs, ok := strings.Cut(line, " = ")
	if !ok {
		return nil, fmt.Errorf("unrecognized statement: %q", line)
	}
	v, err := lookupVar(strings.TrimSpace(lhs), env)
	if err != nil {
		return nil, err
	}
	rhs = strings.TrimSpace(rhs)
	if strings.HasPrefix(rhs, "call ") {
		call, err := parseCall(rhs, env)
		if err != nil {
			return nil, err
		}
		return &ir.Invoke{Result: v, Call: call}, nil
	}
	exp, err := parseExp(rhs, env)
	if err != nil {
		return nil, err
	}
	return &ir.Assign{LHS: v, RHS: exp}, nil
}

func parseSwitch(line string, env map[string]*ir.Var) (ir.Stmt, error) {
	open := strings.Index(line, "{")
	close := strings.LastIndex(line, "}")
	if open < 0 || close < open {
		return nil, fmt.Errorf("malformed switch: %q", line)
	}
	v, err := lookupVar(strings.TrimSpace(line[len("switch "):open]), env)
	if err != nil {
		return nil, err
	}
	s := &ir.Switch{Var: v, Default: -1}
	for _, arm := range strings.Split(line[open+1:close], ",") {
		label, targetPart, ok := strings.Cut(arm, ":")
		if !ok {
			return nil, fmt.Errorf("malformed switch arm: %q", arm)
		}
		target, err := parseTarget(targetPart)
		if err != nil {
			return nil, err
		}
		label = strings.TrimSpace(label)
		if label == "default" {
			s.Default = target
			continue
		}
		value, err := strconv.Atoi(label)
		if err != nil {
			return nil, fmt.Errorf("switch label %q is not an integer", label)
		}
		s.Cases = append(s.Cases, ir.SwitchCase{Value: value, Target: target})
	}
	if s.Default < 0 {
		return nil, fmt.Errorf("switch without default: %q", line)
	}
	return s, nil
}

func parseExp(s string, env map[string]*ir.Var) (ir.Exp, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "call "):
		return parseCall(s, env)

	case strings.HasPrefix(s, "new "):
		class := strings.TrimSpace(strings.TrimPrefix(s, "new "))
		if class == "" {
			return nil, fmt.Errorf("new without class name")
		}
		return &ir.NewExp{Class: class}, nil

	case strings.HasPrefix(s, "("):
		close := strings.Index(s, ")")
		if close < 0 {
			return nil, fmt.Errorf("malformed cast: %q", s)
		}
		operand, err := parseAtom(s[close+1:], env)
		if err != nil {
			return nil, err
		}
		return &ir.CastExp{
			Type:    parseType(strings.TrimSpace(s[1:close])),
			Operand: operand,
		}, nil
	}

	// Binary expressions are always "atom OP atom", and atoms never
	// contain spaces.
	if fields := strings.Fields(s); len(fields) == 3 {
		op, ok := ir.OpFromString(fields[1])
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", fields[1])
		}
		x, err := parseAtom(fields[0], env)
		if err != nil {
			return nil, err
		}
		y, err := parseAtom(fields[2], env)
		if err != nil {
			return nil, err
		}
		return &ir.BinaryExp{Op: op, X: x, Y: y}, nil
	}

	if open := strings.Index(s, "["); open > 0 && strings.HasSuffix(s, "]") {
		base, err := lookupVar(s[:open], env)
		if err != nil {
			return nil, err
		}
		index, err := parseAtom(s[open+1:len(s)-1], env)
		if err != nil {
			return nil, err
		}
		return &ir.ArrayAccess{Base: base, Index: index}, nil
	}

	if base, field, ok := strings.Cut(s, "."); ok {
		if base == "" || field == "" {
			return nil, fmt.Errorf("malformed field access: %q", s)
		}
		// A base naming a local is an instance access and reads that
		// local; anything else is a static access on a class.
		if v, ok := env[base]; ok {
			return &ir.FieldAccess{Base: v, Field: field}, nil
		}
		return &ir.FieldAccess{Class: base, Field: field}, nil
	}

	return parseAtom(s, env)
}

// parseCall parses "call KIND Class.method(arg, ...)".
func parseCall(s string, env map[string]*ir.Var) (*ir.InvokeExp, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(s, "call "))
	kindPart, rest, ok := strings.Cut(rest, " ")
	if !ok {
		return nil, fmt.Errorf("malformed call: %q", s)
	}
	kind, ok := ir.CallKindFromString(kindPart)
	if !ok {
		return nil, fmt.Errorf("unknown call kind %q", kindPart)
	}
	callee, argPart, ok := strings.Cut(rest, "(")
	if !ok || !strings.HasSuffix(argPart, ")") {
		return nil, fmt.Errorf("malformed call: %q", s)
	}
	class, method, ok := strings.Cut(strings.TrimSpace(callee), ".")
	if !ok {
		return nil, fmt.Errorf("call target %q: want Class.method", callee)
	}
	call := &ir.InvokeExp{Kind: kind, Class: class, Method: method}
	argPart = strings.TrimSuffix(argPart, ")")
	if strings.TrimSpace(argPart) != "" {
		for _, arg := range strings.Split(argPart, ",") {
			a, err := parseAtom(arg, env)
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, a)
		}
	}
	return call, nil
}

// parseAtom parses an integer literal or a variable reference.
func parseAtom(s string, env map[string]*ir.Var) (ir.Exp, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return &ir.IntLiteral{Value: n}, nil
	}
	return lookupVar(s, env)
}

func lookupVar(name string, env map[string]*ir.Var) (*ir.Var, error) {
	name = strings.TrimSpace(name)
	if v, ok := env[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("undeclared variable %q", name)
}

func parseTarget(s string) (int, error) {
	target, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("branch target %q is not an integer", s)
	}
	return target, nil
}

// parseVarDecl parses a "type name" declaration.
func parseVarDecl(decl string) (*ir.Var, error) {
	typePart, name, ok := strings.Cut(strings.TrimSpace(decl), " ")
	if !ok {
		return nil, fmt.Errorf("variable declaration %q: want \"type name\"", decl)
	}
	return &ir.Var{Name: strings.TrimSpace(name), Type: parseType(typePart)}, nil
}

func parseType(s string) ir.Type {
	switch s {
	case "void":
		return ir.Void
	case "boolean":
		return ir.Boolean
	case "byte":
		return ir.Byte
	case "char":
		return ir.Char
	case "short":
		return ir.Short
	case "int":
		return ir.Int
	case "long":
		return ir.Long
	case "float":
		return ir.Float
	case "double":
		return ir.Double
	}
	return ir.ClassType{Name: s}
}

// cutLast splits s around the last occurrence of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+len(sep):], true
}
