// Package testutil provides helpers for loading test programs in
// analysis tests.
package testutil

import (
	"testing"

	"github.com/cs-au-dk/fixpoint/analysis/cfg"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/loader"
)

// LoadProgram parses an inline YAML program, failing the test on errors.
func LoadProgram(t *testing.T, src string) *ir.Hierarchy {
	t.Helper()
	h, err := loader.Load([]byte(src))
	if err != nil {
		t.Fatalf("loading test program: %v", err)
	}
	return h
}

// LoadProgramFile reads a program from testdata.
func LoadProgramFile(t *testing.T, path string) *ir.Hierarchy {
	t.Helper()
	h, err := loader.LoadFile(path)
	if err != nil {
		t.Fatalf("loading test program: %v", err)
	}
	return h
}

// Method resolves "Class.method" against h, failing the test if it does
// not exist.
func Method(t *testing.T, h *ir.Hierarchy, name string) *ir.Method {
	t.Helper()
	m, err := loader.EntryMethod(h, name)
	if err != nil {
		t.Fatalf("resolving %s: %v", name, err)
	}
	return m
}

// MethodCFG builds the control-flow graph of "Class.method".
func MethodCFG(t *testing.T, h *ir.Hierarchy, name string) *cfg.CFG {
	t.Helper()
	return cfg.New(Method(t, h, name))
}
