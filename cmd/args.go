package cmd

import (
	"slices"
	"strings"
)

// legacyNames are the long flags historically spelled with a single dash.
var legacyNames = []string{"conda", "dev", "noXmipp", "dry", "httpsClone", "debug"}

// legacyFlags rewrites -name and -name=value into their double-dash form.
// Arguments after "--" are left alone.
func legacyFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, ok := strings.CutPrefix(arg, "-")
		if ok && !strings.HasPrefix(name, "-") {
			bare, _, _ := strings.Cut(name, "=")
			if slices.Contains(legacyNames, bare) {
				arg = "-" + arg
			}
		}
		out = append(out, arg)
	}
	return out
}
