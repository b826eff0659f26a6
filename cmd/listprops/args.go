package main

import (
	"strings"

	"github.com/simonhull/listprops"
)

// invocation is the parsed command line.
type invocation struct {
	showHelp    bool
	showLicense bool
	render      listprops.RenderConfig
	paths       []string
}

// parseArgs interprets args the DOS way: flags are matched without regard
// to case and anything that is not a known flag is a path. No arguments at
// all means help.
func parseArgs(args []string) invocation {
	inv := invocation{showHelp: len(args) == 0}

	for _, arg := range args {
		switch strings.ToLower(arg) {
		case "-c":
			inv.render.UseCanonicalNames = true
		case "-b":
			inv.render.UseBothNames = true
		case "-k":
			inv.render.IncludeKeys = true
		case "-f":
			inv.render.IncludeFlags = true
		case "-l":
			inv.showLicense = true
		case "-h", "-?":
			inv.showHelp = true
		default:
			inv.paths = append(inv.paths, arg)
		}
	}

	return inv
}
