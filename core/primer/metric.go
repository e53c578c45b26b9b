// core/primer/metric.go
package primer

import (
	"strconv"
	"strings"
)

// InvalidText is how an Invalid metric renders.
const InvalidText = "Invalid"

// Metric is a derived numeric property that may be absent. A record with
// no bases yields Invalid for every metric.
type Metric struct {
	v  float64
	ok bool
}

// Invalid is the "no data" metric.
var Invalid = Metric{}

// Value wraps a computed number.
func Value(v float64) Metric { return Metric{v: v, ok: true} }

// Valid reports whether m carries a number.
func (m Metric) Valid() bool { return m.ok }

// Float64 returns the value and whether it is valid.
func (m Metric) Float64() (float64, bool) {
	if !m.ok {
		return 0, false
	}
	return m.v, true
}

// String renders valid values with the shortest exact decimal form and at
// least one fractional digit (36 -> "36.0", 3643.44 -> "3643.44").
func (m Metric) String() string {
	if !m.ok {
		return InvalidText
	}
	s := strconv.FormatFloat(m.v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// round rounds the exact binary value of v to the given number of
// decimals, ties to even (round(40.625, 2) == 40.62).
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
