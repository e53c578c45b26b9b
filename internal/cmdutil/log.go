// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"primercalc-core/primer"
)

// Warnf writes a "WARN: " line to dst unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// WarnRecord reports what sanitizing did to r: non-text input, dropped
// characters, or a sequence left without any base.
func WarnRecord(dst io.Writer, quiet bool, r primer.Record) {
	switch {
	case r.Err() != nil:
		Warnf(dst, quiet, "primer %q: %v", r.Name(), r.Err())
		return
	case r.Dropped() > 0:
		Warnf(dst, quiet, "primer %q: dropped %d non-ACGT character(s)", r.Name(), r.Dropped())
	}
	if r.Len() == 0 {
		Warnf(dst, quiet, "primer %q: no valid bases, metrics are %s", r.Name(), primer.InvalidText)
	}
}
