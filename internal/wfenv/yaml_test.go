package wfenv

import (
	"testing"

	"github.com/wfgraph/wfgraph/internal/wfcore"
)

const sampleModule = `
globals:
  - i32
functions:
  - name: add
    params: [i32, i32]
    returns: [i32]
  - name: scratch
    params: [i32]
    returns: []
    locals: [i64]
tables:
  - params: [i32]
    returns: [i32]
`

func TestLoadYAML(t *testing.T) {
	m, err := LoadYAML([]byte(sampleModule))
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}

	idx, ok := m.FunctionByName("add")
	if !ok || idx != 0 {
		t.Fatalf("expected to find 'add' at index 0, got %d ok=%v", idx, ok)
	}

	env, err := m.Env(idx)
	if err != nil {
		t.Fatalf("Env: %v", err)
	}
	if env.TotalLocals() != 2 {
		t.Fatalf("expected 2 locals (both params), got %d", env.TotalLocals())
	}
	if env.Signature().Returns[0] != wfcore.I32 {
		t.Fatalf("expected i32 return, got %v", env.Signature().Returns[0])
	}

	scratchIdx, _ := m.FunctionByName("scratch")
	scratchEnv, err := m.Env(scratchIdx)
	if err != nil {
		t.Fatalf("Env: %v", err)
	}
	if scratchEnv.TotalLocals() != 2 {
		t.Fatalf("expected 1 param + 1 declared local = 2, got %d", scratchEnv.TotalLocals())
	}
	if scratchEnv.GetLocalType(1) != wfcore.I64 {
		t.Fatalf("expected declared local 1 to be i64, got %v", scratchEnv.GetLocalType(1))
	}

	if !env.IsValidGlobal(0) {
		t.Fatalf("expected global 0 to be valid")
	}
	if env.GetGlobalType(0) != wfcore.I32 {
		t.Fatalf("expected global 0 to be i32")
	}
}

func TestLoadYAMLRejectsUnknownType(t *testing.T) {
	_, err := LoadYAML([]byte("functions:\n  - name: bad\n    params: [bogus]\n"))
	if err == nil {
		t.Fatalf("expected an error for an unrecognized value type")
	}
}
