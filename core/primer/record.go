// core/primer/record.go
package primer

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidSequence replaces the sequence of a record built from non-text input.
const InvalidSequence = "Invalid sequence entered"

// ShortOligoMax is the longest primer still scored with the Wallace rule.
const ShortOligoMax = 13

// ErrNotText marks a record whose raw input was not a string.
var ErrNotText = errors.New("primer: sequence input is not text")

// Record is a named primer with its sanitized 5'→3' sequence. It is
// immutable once built and safe for concurrent use.
type Record struct {
	name    string
	raw     any
	seq     string // canonical a/c/g/t only
	dropped int
	err     error

	a, c, g, t int
}

// New builds a record from an arbitrary raw value. Strings, byte slices
// and rune slices are sanitized; anything else produces an invalid record
// with zero counts.
func New(name string, raw any) Record {
	r := Record{name: name, raw: raw}
	var text string
	switch v := raw.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	case []rune:
		text = string(v)
	default:
		r.err = fmt.Errorf("%w (got %T)", ErrNotText, raw)
		return r
	}
	r.seq, r.dropped = Sanitize(text)
	for i := 0; i < len(r.seq); i++ {
		switch r.seq[i] {
		case 'a':
			r.a++
		case 'c':
			r.c++
		case 'g':
			r.g++
		case 't':
			r.t++
		}
	}
	return r
}

// Parse is New for string input.
func Parse(name, seq string) Record { return New(name, seq) }

func (r Record) Name() string { return r.name }

// Raw returns the input exactly as given to New.
func (r Record) Raw() any { return r.raw }

// Sequence returns the canonical lowercase sequence, or InvalidSequence
// when the input was not text.
func (r Record) Sequence() string {
	if r.err != nil {
		return InvalidSequence
	}
	return r.seq
}

// Err is non-nil (wrapping ErrNotText) only for non-text input. A text
// input without any valid base is not an error.
func (r Record) Err() error { return r.err }

// Valid reports whether the record has at least one base.
func (r Record) Valid() bool { return r.Len() > 0 }

// Dropped is the number of input characters discarded while sanitizing.
func (r Record) Dropped() int { return r.dropped }

// Counts returns a fresh map holding all four bases.
func (r Record) Counts() map[byte]int {
	return map[byte]int{'a': r.a, 'c': r.c, 'g': r.g, 't': r.t}
}

// Len is the number of valid bases.
func (r Record) Len() int { return r.a + r.c + r.g + r.t }

// Triplets renders the uppercase sequence in dash-terminated groups of
// three, e.g. "ACG-TAC-GT-".
func (r Record) Triplets() string { return Triplets(r.seq) }

// ReverseComplement returns the lowercase reverse complement.
func (r Record) ReverseComplement() string { return string(RevComp([]byte(r.seq))) }

// MolecularWeight is the anhydrous weight in daltons, 3 decimals.
func (r Record) MolecularWeight() Metric {
	if r.Len() == 0 {
		return Invalid
	}
	mw := 313.2*float64(r.a) + 328.2*float64(r.g) + 289.2*float64(r.c) + 304.2*float64(r.t) - 60.96
	return Value(round(mw, 3))
}

// GCContent is the G+C percentage, 2 decimals.
func (r Record) GCContent() Metric {
	n := r.Len()
	if n == 0 {
		return Invalid
	}
	return Value(round(100*(float64(r.g+r.c)/float64(n)), 2))
}

// MeltingTemp is the salt-independent Tm in °C, 2 decimals. Primers up to
// ShortOligoMax bases use 2(A+T)+4(G+C); longer ones use
// 64.9+41(G+C-16.4)/N.
func (r Record) MeltingTemp() Metric {
	n := r.Len()
	switch {
	case n == 0:
		return Invalid
	case n <= ShortOligoMax:
		return Value(round(float64(2*(r.a+r.t)+4*(r.g+r.c)), 2))
	default:
		return Value(round(64.9+41*((float64(r.g+r.c)-16.4)/float64(n)), 2))
	}
}

// String is the display form "name: 5'-ACG-TAC-3'".
func (r Record) String() string {
	return fmt.Sprintf("%s: 5'-%s3'", r.name, r.Triplets())
}

// Properties is the batch result of CalcAll.
type Properties struct {
	Name            string
	Sequence        string
	Triplets        string
	Length          int
	MolecularWeight Metric
	GCContent       Metric
	MeltingTemp     Metric
}

// CalcAll evaluates every derived property once.
func (r Record) CalcAll() Properties {
	return Properties{
		Name:            r.name,
		Sequence:        r.Sequence(),
		Triplets:        r.Triplets(),
		Length:          r.Len(),
		MolecularWeight: r.MolecularWeight(),
		GCContent:       r.GCContent(),
		MeltingTemp:     r.MeltingTemp(),
	}
}

// Triplets uppercases s and groups it in threes, each group followed by a
// dash.
func Triplets(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToUpper(s)
	var b strings.Builder
	b.Grow(len(s) + (len(s)+2)/3)
	for i := 0; i < len(s); i += 3 {
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
		b.WriteByte('-')
	}
	return b.String()
}
