// internal/writers/record.go
package writers

import (
	"io"

	"primercalc-core/primer"
	"primercalc/internal/jsonutil"
	"primercalc/internal/output"
)

func init() {
	Register("text", func(w io.Writer, opt output.Options) RecordWriter {
		return &funcWriter{w: w, opt: opt, write: output.WriteInfo}
	})
	Register("json", func(w io.Writer, opt output.Options) RecordWriter {
		return &funcWriter{w: w, opt: opt, write: output.WriteJSON}
	})
	Register("jsonl", StartJSONL)
}

// funcWriter writes each record synchronously.
type funcWriter struct {
	w     io.Writer
	opt   output.Options
	write func(io.Writer, primer.Record, output.Options) error
}

func (f *funcWriter) Write(r primer.Record) error { return f.write(f.w, r, f.opt) }
func (f *funcWriter) Close() error { return nil }

// jsonlWriter streams each record as one v1 JSON line from a goroutine.
type jsonlWriter struct {
	in   chan<- primer.Record
	done <-chan error
}

// StartJSONL starts a streaming JSON-lines writer.
func StartJSONL(w io.Writer, opt output.Options) RecordWriter {
	in, done := jsonutil.StartLines[primer.Record](w, 0,
		func(r primer.Record) any { return output.ToAPIPrimer(r, opt) },
		IsBrokenPipe,
	)
	return &jsonlWriter{in: in, done: done}
}

func (j *jsonlWriter) Write(r primer.Record) error {
	j.in <- r
	return nil
}

func (j *jsonlWriter) Close() error {
	close(j.in)
	return <-j.done
}
