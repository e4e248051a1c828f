package entities

// PartitionBounds is the earliest/latest available draw date for a partition.
// It is never persisted by this service: it is recomputed on demand and cached
// briefly. MinDate <= MaxDate holds whenever both are known; the FEDERAL
// partition additionally has a regulatory floor below which MinDate must never
// report (see internal/domain/scope).
type PartitionBounds struct {
	Partition string `json:"partition"`
	MinDate   string `json:"min_date"`
	MaxDate   string `json:"max_date"`
}

// Known reports whether both edges resolved.
func (b PartitionBounds) Known() bool {
	return b.MinDate != "" && b.MaxDate != ""
}
