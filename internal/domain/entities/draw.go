package entities

// Draw is one lottery closing event (fechamento) read from DynamoDB.
//
// Storage model (DynamoDB):
//   - Table: sorteios, PK: id
//   - GSI uf-data-index: uf / data ("YYYY-MM-DD"), the composite index used
//     for day and range queries; may be absent in older deployments
//   - GSI banca-data-index: banca / data, fallback composite
//   - GSI uf-id-index: uf / id, identity-ordered edge sampling
//
// Within a partition, (Date, Hour, RunCode) identifies at most one logical
// draw; two documents sharing that tuple are merged, keeping whichever has
// the richer prize data. Draws are written by the ingestion tooling and are
// read-only here.
type Draw struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD, partition-local
	Hour      string `json:"hour"` // HH:MM
	Partition string `json:"partition"`
	// RunCode disambiguates multiple runs (edições) sharing date+hour.
	RunCode    string  `json:"run_code,omitempty"`
	Prizes     []Prize `json:"prizes"`
	PrizeCount int     `json:"prize_count"`

	// RawPrizes carries the embedded prize array exactly as stored; the
	// hydrator decides whether it is usable or the child table must be read.
	RawPrizes []RawPrize `json:"-"`
}

// RawPrize is an unvalidated prize entry as found in a document, either
// embedded in a draw or in the premios child table. Field values keep the
// loose store typing (string or number) until parsed.
type RawPrize struct {
	Grupo   any
	Posicao any
	Numero  any
}

// EmbeddedPrizeCount returns the best-known prize count for dedup richness
// comparison: the stored summary when present, else the embedded array size.
func (d Draw) EmbeddedPrizeCount() int {
	if d.PrizeCount > 0 {
		return d.PrizeCount
	}
	return len(d.RawPrizes)
}

// HasLogicalKey reports whether the draw resolves a (date, hour) identity.
func (d Draw) HasLogicalKey() bool {
	return d.Date != "" && d.Hour != ""
}
