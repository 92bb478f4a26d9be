package ctl

import (
	"context"
	"flag"
	"fmt"

	"github.com/carlmjohnson/versioninfo"
	"github.com/google/subcommands"
)

type versionCmd struct {
	env Env
}

func (*versionCmd) Name() string             { return "version" }
func (*versionCmd) Synopsis() string         { return "print the fin360ctl version" }
func (*versionCmd) Usage() string            { return "fin360ctl version\n" }
func (*versionCmd) SetFlags(_ *flag.FlagSet) {}

func (c *versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(c.env.Stdout, versioninfo.Short())
	return subcommands.ExitSuccess
}
