// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"primercalc-core/primer"
	"primercalc/internal/output"
)

// RecordWriter consumes records one at a time. Close flushes anything
// still pending and must be called exactly once.
type RecordWriter interface {
	Write(primer.Record) error
	Close() error
}

// Factory builds a RecordWriter on top of w.
type Factory func(w io.Writer, opt output.Options) RecordWriter

// Writer registry (format → factory). Register in init() blocks.
var registry = map[string]Factory{}

// Register adds or replaces a format (last wins).
func Register(format string, f Factory) { registry[format] = f }

// Formats lists the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New dispatches to the factory registered for format.
func New(format string, w io.Writer, opt output.Options) (RecordWriter, error) {
	f, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return f(w, opt), nil
}
