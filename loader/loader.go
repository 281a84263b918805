// Package loader reads toy programs from YAML files. A program is a list
// of class declarations; method bodies are written in a small textual
// statement syntax, one statement per line, addressed by line index.
package loader

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cs-au-dk/fixpoint/ir"
)

type programFile struct {
	Classes []classDecl `yaml:"classes"`
}

type classDecl struct {
	Name       string       `yaml:"name"`
	Super      string       `yaml:"super"`
	Interfaces []string     `yaml:"interfaces"`
	Abstract   bool         `yaml:"abstract"`
	Interface  bool         `yaml:"interface"`
	Methods    []methodDecl `yaml:"methods"`
}

type methodDecl struct {
	Name     string   `yaml:"name"`
	Params   []string `yaml:"params"`
	Return   string   `yaml:"return"`
	Vars     []string `yaml:"vars"`
	Abstract bool     `yaml:"abstract"`
	Body     []string `yaml:"body"`
}

// LoadFile reads a program from a YAML file and returns its class
// hierarchy.
func LoadFile(path string) (*ir.Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}
	h, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("loading program %s: %w", path, err)
	}
	return h, nil
}

// Load parses a YAML program description. Unknown fields are rejected.
func Load(data []byte) (*ir.Hierarchy, error) {
	var file programFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if len(file.Classes) == 0 {
		return nil, fmt.Errorf("program declares no classes")
	}

	// Create all class shells up front so super/interface references may
	// point forward in the file.
	byName := make(map[string]*ir.Class, len(file.Classes))
	for _, decl := range file.Classes {
		if decl.Name == "" {
			return nil, fmt.Errorf("class with empty name")
		}
		if _, dup := byName[decl.Name]; dup {
			return nil, fmt.Errorf("class %s declared twice", decl.Name)
		}
		byName[decl.Name] = &ir.Class{
			Name:      decl.Name,
			Abstract:  decl.Abstract || decl.Interface,
			Interface: decl.Interface,
		}
	}

	for _, decl := range file.Classes {
		c := byName[decl.Name]
		if decl.Super != "" {
			super, ok := byName[decl.Super]
			if !ok {
				return nil, fmt.Errorf("class %s: unknown superclass %s", decl.Name, decl.Super)
			}
			c.Super = super
		}
		for _, name := range decl.Interfaces {
			iface, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("class %s: unknown interface %s", decl.Name, name)
			}
			c.Interfaces = append(c.Interfaces, iface)
		}
		for _, md := range decl.Methods {
			m, err := buildMethod(decl.Name, md)
			if err != nil {
				return nil, err
			}
			c.Methods = append(c.Methods, m)
		}
	}

	h := ir.NewHierarchy()
	for _, decl := range file.Classes {
		h.Register(byName[decl.Name])
	}
	return h, nil
}

func buildMethod(class string, md methodDecl) (*ir.Method, error) {
	if md.Name == "" {
		return nil, fmt.Errorf("class %s: method with empty name", class)
	}
	qname := class + "." + md.Name

	env := make(map[string]*ir.Var)
	params := make([]*ir.Var, 0, len(md.Params))
	for _, decl := range md.Params {
		v, err := parseVarDecl(decl)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", qname, err)
		}
		if _, dup := env[v.Name]; dup {
			return nil, fmt.Errorf("method %s: variable %s declared twice", qname, v.Name)
		}
		env[v.Name] = v
		params = append(params, v)
	}
	for _, decl := range md.Vars {
		v, err := parseVarDecl(decl)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", qname, err)
		}
		if _, dup := env[v.Name]; dup {
			return nil, fmt.Errorf("method %s: variable %s declared twice", qname, v.Name)
		}
		env[v.Name] = v
	}

	ret := ir.Type(ir.Void)
	if md.Return != "" {
		ret = parseType(md.Return)
	}

	if md.Abstract {
		if len(md.Body) > 0 {
			return nil, fmt.Errorf("method %s: abstract method with a body", qname)
		}
		return ir.NewAbstractMethod(class, md.Name, params, ret), nil
	}
	if len(md.Body) == 0 {
		return nil, fmt.Errorf("method %s: empty body", qname)
	}

	body := make([]ir.Stmt, 0, len(md.Body))
	for i, line := range md.Body {
		s, err := parseStmt(line, env)
		if err != nil {
			return nil, fmt.Errorf("method %s, line %d: %w", qname, i, err)
		}
		body = append(body, s)
	}
	for i, s := range body {
		for _, target := range targetsOf(s) {
			if target < 0 || target > len(body) {
				return nil, fmt.Errorf("method %s, line %d: branch target %d out of range", qname, i, target)
			}
		}
	}
	return ir.NewMethod(class, md.Name, params, ret, body), nil
}

func targetsOf(s ir.Stmt) []int {
	switch s := s.(type) {
	case *ir.If:
		return []int{s.Target}
	case *ir.Goto:
		return []int{s.Target}
	case *ir.Switch:
		ts := make([]int, 0, len(s.Cases)+1)
		for _, c := range s.Cases {
			ts = append(ts, c.Target)
		}
		return append(ts, s.Default)
	}
	return nil
}

// EntryMethod resolves a "Class.method" entry point name against h.
func EntryMethod(h *ir.Hierarchy, name string) (*ir.Method, error) {
	class, method, ok := strings.Cut(name, ".")
	if !ok {
		return nil, fmt.Errorf("entry %q: want Class.method", name)
	}
	c, ok := h.Class(class)
	if !ok {
		return nil, fmt.Errorf("entry %q: unknown class %s", name, class)
	}
	for _, m := range c.Methods {
		if m.Name == method {
			if m.Abstract {
				return nil, fmt.Errorf("entry %q: method is abstract", name)
			}
			return m, nil
		}
	}
	return nil, fmt.Errorf("entry %q: class %s declares no method %s", name, class, method)
}
