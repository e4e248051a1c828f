package usecase

import (
	"context"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
	"resultados/internal/usecase/interfaces"
)

// dateWindow is one inclusive chunk of a date range.
type dateWindow struct {
	from, to string
}

// chunkRange splits an inclusive canonical range into ordered windows of at
// most days calendar days. Returns nil when the inputs are not canonical.
func chunkRange(from, to string, days int) []dateWindow {
	if days < 1 {
		days = 1
	}
	if from == "" || to == "" || from > to {
		return nil
	}

	var out []dateWindow
	cursor := from
	for cursor != "" && cursor <= to {
		end := normalize.AddDays(cursor, days-1)
		if end == "" {
			return nil
		}
		if end > to {
			end = to
		}
		out = append(out, dateWindow{from: cursor, to: end})
		cursor = normalize.AddDays(end, 1)
	}
	return out
}

// chunkedRange executes a range as ordered chunks through the query
// executor, concatenating and deduplicating. Single-day windows go through
// the equality path (which survives a missing composite index); multi-day
// windows that hit a missing index degrade recursively to day-by-day.
func (u *DrawQueryUseCase) chunkedRange(ctx context.Context, partition, from, to string, chunkDays int) ([]entities.Draw, error) {
	var out []entities.Draw
	for _, w := range chunkRange(from, to, chunkDays) {
		var draws []entities.Draw
		var err error
		if w.from == w.to {
			draws, err = u.draws.QueryByDate(ctx, partition, w.from)
		} else {
			draws, err = u.draws.QueryByDateRange(ctx, partition, w.from, w.to)
			if err != nil {
				if _, ok := interfaces.AsMissingIndex(err); ok {
					draws, err = u.chunkedRange(ctx, partition, w.from, w.to, 1)
				}
			}
		}
		if err != nil {
			return nil, err
		}
		out = append(out, draws...)
	}
	return DedupDraws(out), nil
}
