// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"primercalc/internal/version"
)

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – DNA primer calculator\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s                     (interactive prompt)\n", name)
		fmt.Fprintf(out, "  %s -n 'Gapdh Forward' -s aaccgtagttctaaacg\n", name)
		fmt.Fprintf(out, "  %s -n fwd -o json ACGTACGTACGT\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -n, --name string           Primer name")
		fmt.Fprintln(out, "  -s, --sequence string       Primer sequence (5'→3'); non-ACGT characters are dropped")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --revcomp               Also show the reverse complement [%s]\n", def("revcomp"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
