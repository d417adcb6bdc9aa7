// Command wfgraphc decodes one function body against a YAML module
// description, either building its sea-of-nodes graph or, with -verify,
// only checking that it is well-typed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/wfgraph/wfgraph/internal/wfcore"
	"github.com/wfgraph/wfgraph/internal/wfenv"
	"github.com/wfgraph/wfgraph/internal/wfgraph"
	"github.com/wfgraph/wfgraph/internal/wlog"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := newFlagSet("wfgraphc")
	modulePath := fs.String("module", "", "path to a YAML module description")
	codePath := fs.String("code", "", "path to the function body's bytecode")
	funcName := fs.String("func", "", "name of the function to decode, as declared in the module description")
	verify := fs.Bool("verify", false, "only type-check the body; do not build a graph")
	var maxBytes uint64
	fs.Uint64Var(&maxBytes, "max-bytes", 1<<20, "reject bodies larger than this many bytes")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log := wlog.New(slog.LevelInfo).Module("wfgraphc")
	fmt.Fprintf(os.Stderr, "wfgraphc %s (%s)\n", version, commit)

	if *modulePath == "" || *codePath == "" || *funcName == "" {
		fmt.Fprintln(os.Stderr, "usage: wfgraphc -module module.yaml -code body.bin -func name")
		return 2
	}

	moduleBytes, err := os.ReadFile(*modulePath)
	if err != nil {
		log.Error("reading module description", "error", err)
		return 1
	}
	mod, err := wfenv.LoadYAML(moduleBytes)
	if err != nil {
		log.Error("parsing module description", "error", err)
		return 1
	}
	idx, ok := mod.FunctionByName(*funcName)
	if !ok {
		log.Error("function not declared in module", "func", *funcName)
		return 1
	}
	fn, err := mod.Env(idx)
	if err != nil {
		log.Error("building function environment", "error", err)
		return 1
	}

	code, err := os.ReadFile(*codePath)
	if err != nil {
		log.Error("reading bytecode", "error", err)
		return 1
	}
	if uint64(len(code)) > maxBytes {
		log.Error("bytecode too large", "bytes", len(code), "max", maxBytes)
		return 1
	}

	var builder wfcore.Builder
	var graph *wfgraph.Graph
	if *verify {
		builder = wfgraph.NullBuilder{}
	} else {
		graph = wfgraph.New()
		builder = graph
	}

	res := wfcore.Decode(code, fn, builder, log)
	if !res.OK {
		fmt.Fprintf(os.Stderr, "decode failed at pc %d: %s\n", res.Err.PC, res.Err.Error())
		return 1
	}

	fmt.Fprintf(os.Stderr, "ok: %d top-level statement(s), digest %x\n", len(res.Trees), res.Digest)
	if graph != nil {
		fmt.Fprintf(os.Stderr, "graph: %d node(s), %d return(s)\n", len(graph.Nodes()), len(graph.Returns))
	}
	return 0
}
