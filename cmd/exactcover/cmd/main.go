// Package cmd wires the exact-cover CLI sub-commands, grounded on
// github.com/grailbio/bio/cmd/bio-pamtool/cmd/main.go's
// v.io/x/lib/cmdline + github.com/grailbio/base/cmdutil.RunnerFunc
// pattern: one newCmdX() per sub-command, grouped under a root Command
// with Children.
package cmd

import "v.io/x/lib/cmdline"

// Root returns the top-level exactcover command tree: `ec`, `gen`
// (with `rand` and `sudoku` children), and `compare` (spec §6 CLI
// surface).
func Root() *cmdline.Command {
	return &cmdline.Command{
		Name:     "exactcover",
		Short:    "Exact cover search engine and supporting tools",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdEC(),
			newCmdGen(),
			newCmdCompare(),
		},
	}
}
