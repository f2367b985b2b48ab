// Command exactcover runs the exact cover search engine and its
// supporting instance generator and comparison tools, grounded on
// cmd/bio-pamtool's main-package-plus-cmd-subpackage layout.
package main

import (
	"v.io/x/lib/cmdline"

	"github.com/LucaCtt/ASD-Cotti-Miorada/cmd/exactcover/cmd"
)

func main() {
	cmdline.HideGlobalFlagsExcept()
	cmdline.Main(cmd.Root())
}
