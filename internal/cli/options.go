// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Output formats
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputJSONL = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Primer input (one-shot mode)
	Name     string
	Sequence string

	// Output
	Output  string
	RevComp bool

	// Misc
	Quiet   bool
	Version bool

	oneShot bool
}

// Interactive reports whether no primer was given on the command line, in
// which case primers are read from stdin.
func (o Options) Interactive() bool { return !o.oneShot }

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are joined into the sequence when --sequence is absent.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.Name, "name", "", "primer name")
	fs.StringVar(&opt.Sequence, "sequence", "", "primer sequence (5'→3')")
	fs.StringVar(&opt.Name, "n", "", "alias of --name")
	fs.StringVar(&opt.Sequence, "s", "", "alias of --sequence")

	fs.StringVar(&opt.Output, "output", OutputText, "output: text | json | jsonl ["+OutputText+"]")
	fs.StringVar(&opt.Output, "o", OutputText, "alias of --output")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "also show the reverse complement [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := splitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	nameSet := set["name"] || set["n"]
	seqSet := set["sequence"] || set["s"]

	if len(posArgs) > 0 {
		if seqSet {
			return opt, fmt.Errorf("unexpected arguments %q with --sequence", posArgs)
		}
		opt.Sequence = strings.Join(posArgs, "")
		seqSet = true
	}

	switch {
	case nameSet && !seqSet:
		return opt, errors.New("--name needs a sequence (--sequence or positional)")
	case seqSet && !nameSet:
		return opt, errors.New("--name and --sequence must be supplied together")
	}
	opt.oneShot = nameSet && seqSet

	switch opt.Output {
	case OutputText, OutputJSON, OutputJSONL:
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// splitFlagsAndPositionals separates flag-like args from positionals so
// flags may follow the sequence ("primer-calc ACGT -n fwd").
func splitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			boolFlags[f.Name] = true
		}
	})
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			posArgs = append(posArgs, arg)
			continue
		}
		flagArgs = append(flagArgs, arg)
		if strings.Contains(arg, "=") {
			continue
		}
		if name := strings.TrimLeft(arg, "-"); !boolFlags[name] && i+1 < len(argv) {
			flagArgs = append(flagArgs, argv[i+1])
			i++
		}
	}
	return
}
