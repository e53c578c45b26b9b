// internal/output/json.go
package output

import (
	"io"

	"primercalc-core/primer"
	"primercalc/internal/jsonutil"
	"primercalc/pkg/api"
)

// ToAPIPrimer converts a record to the stable wire schema (v1).
func ToAPIPrimer(r primer.Record, opt Options) api.PrimerV1 {
	p := r.CalcAll()
	c := r.Counts()
	v := api.PrimerV1{
		Name:            p.Name,
		Sequence:        p.Sequence,
		Triplets:        p.Triplets,
		Length:          p.Length,
		Counts:          api.BaseCountV1{A: c['a'], C: c['c'], G: c['g'], T: c['t']},
		MolecularWeight: metricPtr(p.MolecularWeight),
		GCContent:       metricPtr(p.GCContent),
		MeltingTemp:     metricPtr(p.MeltingTemp),
		Valid:           r.Valid(),
	}
	if opt.RevComp {
		v.ReverseComplement = r.ReverseComplement()
	}
	return v
}

func metricPtr(m primer.Metric) *float64 {
	v, ok := m.Float64()
	if !ok {
		return nil
	}
	return &v
}

// WriteJSON writes one pretty-indented v1 object.
func WriteJSON(w io.Writer, r primer.Record, opt Options) error {
	return jsonutil.EncodePretty(w, ToAPIPrimer(r, opt))
}
