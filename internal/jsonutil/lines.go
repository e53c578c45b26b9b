// internal/jsonutil/lines.go
package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// StartLines spins up a JSON-lines encoder goroutine for values of type T.
// Each value is converted with toWire and written as one compact line.
// Close the returned channel, then read the error channel once; errors for
// which ignore returns true (e.g. a closed pipe) are reported as nil.
func StartLines[T any](out io.Writer, bufSize int, toWire func(T) any, ignore func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 16
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bufio.NewWriter(out)
		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err != nil {
				continue // drain so senders never block
			}
			if err = enc.Encode(toWire(v)); err == nil {
				// one record per line, visible as soon as it is produced
				err = bw.Flush()
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && ignore != nil && ignore(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
