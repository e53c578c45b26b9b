// pkg/api/primer_v1.go
package api

// PrimerV1 is the stable JSON/JSONL schema for one primer.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Metrics are null when the primer has no valid bases.
type PrimerV1 struct {
	Name              string      `json:"name"`
	Sequence          string      `json:"sequence"`
	Triplets          string      `json:"triplets"`
	Length            int         `json:"length"`
	Counts            BaseCountV1 `json:"counts"`
	MolecularWeight   *float64    `json:"molecular_weight"`
	GCContent         *float64    `json:"gc_content"`
	MeltingTemp       *float64    `json:"melting_temp"`
	Valid             bool        `json:"valid"`
	ReverseComplement string      `json:"reverse_complement,omitempty"`
}

// BaseCountV1 holds per-base occurrence counts.
type BaseCountV1 struct {
	A int `json:"a"`
	C int `json:"c"`
	G int `json:"g"`
	T int `json:"t"`
}
