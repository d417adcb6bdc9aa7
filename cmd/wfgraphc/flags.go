package main

import (
	"flag"
	"fmt"
	"strconv"
)

// flagSet is a thin wrapper over flag.FlagSet adding a Uint64Var helper, the
// same shape as the command-line flag layer this module's stack prefers.
type flagSet struct {
	*flag.FlagSet
}

func newFlagSet(name string) *flagSet {
	return &flagSet{FlagSet: flag.NewFlagSet(name, flag.ExitOnError)}
}

type uint64Value uint64

func (v *uint64Value) String() string { return strconv.FormatUint(uint64(*v), 10) }

func (v *uint64Value) Set(s string) error {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid uint64 %q: %w", s, err)
	}
	*v = uint64Value(n)
	return nil
}

func (fs *flagSet) Uint64Var(p *uint64, name string, value uint64, usage string) {
	*p = value
	fs.Var((*uint64Value)(p), name, usage)
}
