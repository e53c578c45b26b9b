// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"primercalc-core/primer"
)

// Options toggles optional parts of every output format.
type Options struct {
	RevComp bool
}

const (
	ruleWidth = 30
	labelPad  = "%-20s"
)

// WriteInfo prints the console info block for one primer:
//
//	============================== name ==============================
//	Sequence:           5'-ACG-TAC-GTA-CGT-3'
//	...
func WriteInfo(w io.Writer, r primer.Record, opt Options) error {
	p := r.CalcAll()
	rule := strings.Repeat("=", ruleWidth)

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s %s\n", rule, p.Name, rule)
	fmt.Fprintf(&b, labelPad+"5'-%s3'\n", "Sequence:", p.Triplets)
	if opt.RevComp {
		fmt.Fprintf(&b, labelPad+"5'-%s3'\n", "Reverse Comp:", primer.Triplets(r.ReverseComplement()))
	}
	fmt.Fprintf(&b, labelPad+"%d nucleotides\n", "Length:", p.Length)
	fmt.Fprintf(&b, labelPad+"%s\n", "Molecular Weight:", MWLine(p.MolecularWeight))
	fmt.Fprintf(&b, labelPad+"%s\n", "GC Content:", GCLine(p.GCContent))
	fmt.Fprintf(&b, labelPad+"%s\n", "Standard Tm:", TmLine(p.MeltingTemp))
	b.WriteString(strings.Repeat("=", 2*ruleWidth+2+utf8.RuneCountInString(p.Name)))
	b.WriteString("\n\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// MWLine renders a molecular weight as "3643.44 daltons (g/M)".
func MWLine(m primer.Metric) string { return m.String() + " daltons (g/M)" }

// GCLine renders a GC content as "50.0 % GC".
func GCLine(m primer.Metric) string { return m.String() + " % GC" }

// TmLine renders a melting temperature as "36.0 ºC".
func TmLine(m primer.Metric) string { return m.String() + " ºC" }
