package callgraph_test

import (
	"testing"

	"github.com/cs-au-dk/fixpoint/analysis/callgraph"
	"github.com/cs-au-dk/fixpoint/ir"
	"github.com/cs-au-dk/fixpoint/testutil"
)

const hierarchyProgram = `
classes:
  - name: Animal
    abstract: true
    methods:
      - name: sound
        abstract: true
        return: int
  - name: Dog
    super: Animal
    methods:
      - name: sound
        return: int
        body:
          - "return 1"
  - name: Cat
    super: Animal
    methods:
      - name: sound
        return: int
        body:
          - "return 2"
  - name: Kitten
    super: Cat
  - name: Main
    methods:
      - name: main
        vars: ["int s"]
        body:
          - "s = call virtual Animal.sound()"
          - "return"
`

func TestVirtualDispatchTargets(t *testing.T) {
	h := testutil.LoadProgram(t, hierarchyProgram)
	main := testutil.Method(t, h, "Main.main")

	cg := callgraph.BuildCHA(h, main)

	site := main.Body[0].(*ir.Invoke)
	callees := cg.CalleesOf(site)
	if len(callees) != 2 {
		t.Fatalf("virtual call on Animal resolved to %d targets, want 2: %v",
			len(callees), callees)
	}
	names := map[string]bool{}
	for _, m := range callees {
		names[m.String()] = true
		if m.Abstract {
			t.Errorf("abstract method %s resolved as a target", m)
		}
	}
	if !names["Dog.sound"] || !names["Cat.sound"] {
		t.Errorf("targets %v, want Dog.sound and Cat.sound", names)
	}
}

func TestDispatchWalksSuperclasses(t *testing.T) {
	h := testutil.LoadProgram(t, hierarchyProgram)
	kitten, _ := h.Class("Kitten")

	// Kitten declares nothing; dispatch finds the inherited Cat.sound.
	m, ok := callgraph.Dispatch(kitten, "sound/0")
	if !ok {
		t.Fatal("dispatch on Kitten found no method")
	}
	if m.String() != "Cat.sound" {
		t.Errorf("dispatched to %s, want Cat.sound", m)
	}
}

const interfaceProgram = `
classes:
  - name: Speaker
    interface: true
    methods:
      - name: speak
        abstract: true
        return: int
  - name: Silent
    interface: true
    methods:
      - name: hush
        abstract: true
        return: int
  - name: Person
    interfaces: [Speaker]
    methods:
      - name: speak
        return: int
        body:
          - "return 1"
  - name: Main
    methods:
      - name: main
        vars: ["int a", "int b"]
        body:
          - "a = call interface Speaker.speak()"
          - "b = call interface Silent.hush()"
          - "return"
`

func TestInterfaceDispatch(t *testing.T) {
	h := testutil.LoadProgram(t, interfaceProgram)
	main := testutil.Method(t, h, "Main.main")

	cg := callgraph.BuildCHA(h, main)

	spoken := main.Body[0].(*ir.Invoke)
	if callees := cg.CalleesOf(spoken); len(callees) != 1 || callees[0].String() != "Person.speak" {
		t.Errorf("Speaker.speak resolved to %v, want Person.speak", callees)
	}

	// An interface without implementors yields no edges and no error.
	hushed := main.Body[1].(*ir.Invoke)
	if callees := cg.CalleesOf(hushed); len(callees) != 0 {
		t.Errorf("Silent.hush resolved to %v, want no targets", callees)
	}
}

const reachabilityProgram = `
classes:
  - name: Main
    methods:
      - name: main
        body:
          - "call static Main.helper()"
          - "return"
      - name: helper
        body:
          - "call static Main.leaf()"
          - "return"
      - name: leaf
        body:
          - "return"
      - name: orphan
        body:
          - "return"
`

func TestReachability(t *testing.T) {
	h := testutil.LoadProgram(t, reachabilityProgram)
	main := testutil.Method(t, h, "Main.main")

	cg := callgraph.BuildCHA(h, main)

	for _, name := range []string{"Main.main", "Main.helper", "Main.leaf"} {
		if !cg.Contains(testutil.Method(t, h, name)) {
			t.Errorf("%s not reachable", name)
		}
	}
	if cg.Contains(testutil.Method(t, h, "Main.orphan")) {
		t.Errorf("Main.orphan reachable despite having no callers")
	}
	if got := len(cg.Edges()); got != 2 {
		t.Errorf("%d call edges, want 2", got)
	}
	for _, e := range cg.Edges() {
		if e.Kind != ir.Static {
			t.Errorf("edge %s -> %s has kind %s, want static", e.Caller, e.Callee, e.Kind)
		}
	}
}
