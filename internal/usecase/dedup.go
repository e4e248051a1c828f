package usecase

import (
	"fmt"

	"resultados/internal/domain/entities"
)

// DedupDraws collapses documents that represent the same logical draw.
//
// The dedup key is (date, hour, run-code) when date and hour both resolved,
// else the raw document id; a record is never dropped just because it lacks
// a logical key. When two records collide, the one with the larger prize
// count wins; on a count tie a record with a logical key beats one keyed by
// raw identity. Draws with different run codes never merge, even on an exact
// date+hour match. Order of first appearance is preserved, and the operation
// is idempotent.
func DedupDraws(in []entities.Draw) []entities.Draw {
	if len(in) < 2 {
		return in
	}

	idx := make(map[string]int, len(in))
	out := make([]entities.Draw, 0, len(in))
	for i, d := range in {
		key := dedupKey(d, i)
		j, ok := idx[key]
		if !ok {
			idx[key] = len(out)
			out = append(out, d)
			continue
		}
		if richer(d, out[j]) {
			out[j] = d
		}
	}
	return out
}

func dedupKey(d entities.Draw, i int) string {
	if d.HasLogicalKey() {
		return "k|" + d.Date + "|" + d.Hour + "|" + d.RunCode
	}
	if d.ID != "" {
		return "id|" + d.ID
	}
	// No identity at all; keep the record standalone.
	return fmt.Sprintf("anon|%d", i)
}

func richer(cand, kept entities.Draw) bool {
	if cand.EmbeddedPrizeCount() != kept.EmbeddedPrizeCount() {
		return cand.EmbeddedPrizeCount() > kept.EmbeddedPrizeCount()
	}
	return cand.HasLogicalKey() && !kept.HasLogicalKey()
}
