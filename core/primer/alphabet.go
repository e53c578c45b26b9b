// core/primer/alphabet.go
package primer

/* --------------------------- base lookup tables -------------------------- */

// Bases is the canonical alphabet, in the order counts are reported.
const Bases = "acgt"

var (
	canonical  [256]byte // input byte -> canonical lowercase base, 0 = dropped
	complement [256]byte
)

func init() {
	for _, c := range []byte(Bases) {
		canonical[c] = c
		canonical[c-'a'+'A'] = c
	}
	complement['a'] = 't'
	complement['c'] = 'g'
	complement['g'] = 'c'
	complement['t'] = 'a'
}

// Sanitize case-folds s and keeps only a, c, g and t, preserving order.
// It also reports how many characters were discarded.
func Sanitize(s string) (seq string, dropped int) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 256 {
			if c := canonical[byte(r)]; c != 0 {
				out = append(out, c)
				continue
			}
		}
		dropped++
	}
	return string(out), dropped
}

// RevComp returns the reverse complement of a canonical sequence.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
