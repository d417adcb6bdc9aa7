package wfenv

import (
	"fmt"

	"github.com/wfgraph/wfgraph/internal/wfcore"
	"gopkg.in/yaml.v2"
)

// moduleDoc is the on-disk shape of a module description: enough to build
// an Env for any one of its functions without a real module loader or
// instantiation pipeline, which are out of scope for this package.
type moduleDoc struct {
	Globals   []string      `yaml:"globals"`
	Functions []functionDoc `yaml:"functions"`
	Tables    []functionDoc `yaml:"tables"`
}

type functionDoc struct {
	Name    string   `yaml:"name"`
	Params  []string `yaml:"params"`
	Returns []string `yaml:"returns"`
	Locals  []string `yaml:"locals"`
}

// Module is a parsed module description: its global table, its function
// signature table, and its indirect-call table, from which an Env can be
// built for any declared function.
type Module struct {
	globals []wfcore.ValueType
	funcs   []wfcore.Signature
	tables  []wfcore.Signature
	names   []string
	locals  [][]wfcore.ValueType
}

// LoadYAML parses a module description. See moduleDoc for the expected
// shape; type names are "i32", "i64", "f32", or "f64".
func LoadYAML(data []byte) (*Module, error) {
	var doc moduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing module yaml: %w", err)
	}

	m := &Module{}
	for _, g := range doc.Globals {
		typ, err := parseValueType(g)
		if err != nil {
			return nil, fmt.Errorf("global: %w", err)
		}
		m.globals = append(m.globals, typ)
	}
	for _, t := range doc.Tables {
		sig, err := parseSignature(t)
		if err != nil {
			return nil, fmt.Errorf("table entry %q: %w", t.Name, err)
		}
		m.tables = append(m.tables, sig)
	}
	for _, f := range doc.Functions {
		sig, err := parseSignature(f)
		if err != nil {
			return nil, fmt.Errorf("function %q: %w", f.Name, err)
		}
		locals, err := parseValueTypes(f.Locals)
		if err != nil {
			return nil, fmt.Errorf("function %q locals: %w", f.Name, err)
		}
		m.funcs = append(m.funcs, sig)
		m.names = append(m.names, f.Name)
		m.locals = append(m.locals, locals)
	}
	return m, nil
}

func parseSignature(f functionDoc) (wfcore.Signature, error) {
	params, err := parseValueTypes(f.Params)
	if err != nil {
		return wfcore.Signature{}, fmt.Errorf("params: %w", err)
	}
	returns, err := parseValueTypes(f.Returns)
	if err != nil {
		return wfcore.Signature{}, fmt.Errorf("returns: %w", err)
	}
	return wfcore.Signature{Params: params, Returns: returns}, nil
}

func parseValueTypes(names []string) ([]wfcore.ValueType, error) {
	out := make([]wfcore.ValueType, len(names))
	for i, n := range names {
		typ, err := parseValueType(n)
		if err != nil {
			return nil, err
		}
		out[i] = typ
	}
	return out, nil
}

func parseValueType(name string) (wfcore.ValueType, error) {
	switch name {
	case "i32":
		return wfcore.I32, nil
	case "i64":
		return wfcore.I64, nil
	case "f32":
		return wfcore.F32, nil
	case "f64":
		return wfcore.F64, nil
	default:
		return 0, fmt.Errorf("unrecognized value type %q", name)
	}
}

// FunctionByName locates a declared function by name.
func (m *Module) FunctionByName(name string) (int, bool) {
	for i, n := range m.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// Env builds the wfcore.FunctionEnvironment for the i'th declared function.
func (m *Module) Env(i int) (*Env, error) {
	if i < 0 || i >= len(m.funcs) {
		return nil, fmt.Errorf("function index %d out of range", i)
	}
	return New(m.funcs[i], m.locals[i], m.globals, m.funcs, m.tables), nil
}
