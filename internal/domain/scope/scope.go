// Package scope maps loose region/lottery inputs to canonical partition keys
// and owns the per-partition regulatory date floor.
package scope

import (
	"strings"

	"resultados/internal/domain/entities"
)

const (
	// PartitionRio and PartitionFederal are the two privileged partitions.
	// Every other input passes through upper-cased/trimmed unchanged.
	PartitionRio     = "RJ"
	PartitionFederal = "FEDERAL"

	// FederalFloor is the hard regulatory floor for the FEDERAL partition.
	// Historical scans below this date are incomplete and must never be
	// reported as the partition minimum.
	FederalFloor = "2019-03-06"

	// rioBanca is the secondary discriminator injected on RJ queries so a
	// lookup by the primary partition field alone cannot leak draws from
	// other bancas sharing the uf attribute.
	rioBanca = "RIO"
)

var aliases = map[string]string{
	"rj":            PartitionRio,
	"rio":           PartitionRio,
	"riodejaneiro":  PartitionRio,
	"deunoposte":    PartitionRio,
	"ptrio":         PartitionRio,
	"federal":       PartitionFederal,
	"loteriafederal": PartitionFederal,
	"lf":            PartitionFederal,
}

// Resolve maps a free-form scope string to its canonical partition key.
// Alias matching ignores case, spaces, underscores and hyphens; anything
// outside the alias set is returned upper-cased and trimmed.
func Resolve(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if p, ok := aliases[foldKey(trimmed)]; ok {
		return p
	}
	return strings.ToUpper(trimmed)
}

func foldKey(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

// Floor returns the hard minimum date for a partition, or "" when none.
func Floor(partition string) string {
	if partition == PartitionFederal {
		return FederalFloor
	}
	return ""
}

// Discriminator returns the extra equality predicate injected into queries
// for a partition, as (field, value). Empty field means none.
func Discriminator(partition string) (string, string) {
	if partition == PartitionRio {
		return "banca", rioBanca
	}
	return "", ""
}

// ClampBounds applies the partition floor to computed bounds. A minimum
// below the floor is raised to it; a maximum below the floor is raised too,
// so an inverted range never reaches callers. ISO day strings compare
// lexicographically, which is what makes the plain string comparison safe.
func ClampBounds(b entities.PartitionBounds) entities.PartitionBounds {
	floor := Floor(b.Partition)
	if floor == "" {
		return b
	}
	if b.MinDate == "" || b.MinDate < floor {
		b.MinDate = floor
	}
	if b.MaxDate != "" && b.MaxDate < floor {
		b.MaxDate = floor
	}
	return b
}
