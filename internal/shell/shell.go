// internal/shell/shell.go
package shell

import (
	"bufio"
	"context"
	"io"
	"strings"

	"primercalc-core/primer"
)

const (
	NamePrompt     = "Enter your primer name, 'exit' or 'q' to quit.\nName > "
	SequencePrompt = "Enter your primer sequence\nSequence > "
	Goodbye        = "Exiting..."
)

// ExitKeys end the session when entered as a name (case-insensitive).
var ExitKeys = []string{"exit", "q"}

// Config wires the prompt loop to its input, its prompt stream and the
// consumer of each finished record.
type Config struct {
	In     io.Reader
	Prompt io.Writer
	Emit   func(primer.Record) error
}

type flusher interface{ Flush() error }

type line struct {
	text string
	err  error
}

// readLines feeds lines of in to the returned channel until EOF, a read
// error (sent as the last item) or done is closed. Lines have no length
// limit; a trailing "\r" is removed.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	out := make(chan line)
	go func() {
		defer close(out)
		br := bufio.NewReader(in)
		for {
			s, err := br.ReadString('\n')
			if s != "" && (err == nil || err == io.EOF) {
				s = strings.TrimSuffix(strings.TrimSuffix(s, "\n"), "\r")
				select {
				case out <- line{text: s}:
				case <-done:
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case out <- line{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return out
}

// Run asks for a name and a sequence until an exit key, an empty name or
// EOF, emitting one record per pair. It returns the number of records.
// Canceling ctx interrupts a prompt that is waiting for input.
func Run(ctx context.Context, cfg Config) (int, error) {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(cfg.In, done)

	ask := func(prompt string) (string, bool, error) {
		if _, err := io.WriteString(cfg.Prompt, prompt); err != nil {
			return "", false, err
		}
		if f, ok := cfg.Prompt.(flusher); ok {
			if err := f.Flush(); err != nil {
				return "", false, err
			}
		}
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case l, open := <-lines:
			if !open {
				return "", false, nil
			}
			if l.err != nil {
				return "", false, l.err
			}
			return l.text, true, nil
		}
	}

	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		name, ok, err := ask(NamePrompt)
		if err != nil {
			return n, err
		}
		if !ok || isExit(name) {
			break
		}
		seq, ok, err := ask(SequencePrompt)
		if err != nil {
			return n, err
		}
		if !ok {
			break
		}
		if err := cfg.Emit(primer.Parse(name, seq)); err != nil {
			return n, err
		}
		n++
	}
	_, err := io.WriteString(cfg.Prompt, Goodbye+"\n")
	return n, err
}

func isExit(name string) bool {
	if name == "" {
		return true
	}
	for _, k := range ExitKeys {
		if strings.EqualFold(name, k) {
			return true
		}
	}
	return false
}
