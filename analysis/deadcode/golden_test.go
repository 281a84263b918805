package deadcode_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/cs-au-dk/fixpoint/testutil"
)

func TestReportGolden(t *testing.T) {
	program := `
classes:
  - name: Main
    methods:
      - name: run
        vars: ["int v", "int r"]
        body:
          - "v = 1"
          - "switch v { 1: 3, 2: 5, default: 7 }"
          - "nop"
          - "r = 1"
          - "goto 8"
          - "r = 2"
          - "goto 8"
          - "r = 3"
          - "return r"
`
	h := testutil.LoadProgram(t, program)
	m := testutil.Method(t, h, "Main.run")
	dead := detect(t, program, "Main.run")

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", m)
	for _, s := range dead {
		fmt.Fprintf(&buf, "  %d: %s\n", s.Index(), s)
	}

	gold := goldie.New(t)
	gold.Assert(t, "switch-report", buf.Bytes())
}
