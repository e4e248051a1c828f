package usecase

import (
	"context"
	"sort"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
	"resultados/internal/domain/scope"
	"resultados/internal/infrastructure/cache"
)

// stalenessChunkDays is how many days each backward window covers while
// looking for the last sighting of every grupo.
const stalenessChunkDays = 30

// GetStaleness ranks all grupos of one prize position by how long ago each
// was last drawn inside [From, To]. The search walks the range backwards in
// windows and stops as soon as every grupo has been sighted.
func (u *DrawQueryUseCase) GetStaleness(ctx context.Context, q StalenessQuery) ([]entities.StalenessRow, error) {
	partition := scope.Resolve(q.Scope)
	if partition == "" {
		return nil, ErrInvalidScope
	}
	from, to := normalize.Date(q.From), normalize.Date(q.To)
	if from == "" || to == "" {
		return nil, ErrInvalidDate
	}
	if from > to {
		return nil, ErrInvalidRange
	}
	position := q.Position
	if position == 0 {
		position = 1
	}
	if position < 1 || position > entities.MaxPosition {
		return nil, ErrInvalidPosition
	}
	baseline := normalize.Date(q.Baseline)
	if baseline == "" {
		baseline = to
	}

	key := cache.Key("staleness", partition, from, to, itoa(position), baseline)
	if rows, ok := u.rowsCache.Get(key); ok {
		return rows, nil
	}

	lastSeen := map[int]entities.Draw{}
	cursor := to
	for cursor >= from && len(lastSeen) < entities.GrupoCount {
		winFrom := normalize.AddDays(cursor, -(stalenessChunkDays - 1))
		if winFrom < from {
			winFrom = from
		}

		draws, err := u.rangeDraws(ctx, partition, winFrom, cursor, position, ModeDetailed, ReadCachePreferred)
		if err != nil {
			return nil, err
		}
		sortDrawsDesc(draws)
		for _, d := range draws {
			for _, p := range d.Prizes {
				if p.Position != position {
					continue
				}
				if p.Grupo < 1 || p.Grupo > entities.GrupoCount {
					continue
				}
				if _, seen := lastSeen[p.Grupo]; !seen {
					lastSeen[p.Grupo] = d
				}
			}
			if len(lastSeen) == entities.GrupoCount {
				break
			}
		}

		cursor = normalize.AddDays(winFrom, -1)
		if cursor == "" {
			break
		}
	}

	rows := make([]entities.StalenessRow, 0, entities.GrupoCount)
	for grupo := 1; grupo <= entities.GrupoCount; grupo++ {
		row := entities.StalenessRow{Grupo: grupo}
		if d, ok := lastSeen[grupo]; ok {
			row.LastSeenDate = d.Date
			row.LastSeenHour = d.Hour
			if days, err := normalize.DaysBetween(d.Date, baseline); err == nil {
				if days < 0 {
					days = 0
				}
				elapsed := days
				row.ElapsedDays = &elapsed
			}
		}
		rows = append(rows, row)
	}
	rankStalenessRows(rows)

	u.rowsCache.Set(key, rows)
	return rows, nil
}

// sortDrawsDesc orders draws newest first so the first sighting of a grupo
// is its most recent one. Ties fall back to hour, run code and id, all
// descending, so the ordering is total.
func sortDrawsDesc(draws []entities.Draw) {
	sort.SliceStable(draws, func(i, j int) bool {
		a, b := draws[i], draws[j]
		if a.Date != b.Date {
			return a.Date > b.Date
		}
		if a.Hour != b.Hour {
			return a.Hour > b.Hour
		}
		if a.RunCode != b.RunCode {
			return a.RunCode > b.RunCode
		}
		return a.ID > b.ID
	})
}

// rankStalenessRows sorts rows by staleness and stamps 1-based ranks.
// Unseen grupos (nil elapsed) sort after every numeric value; among equals
// the earlier hour, then the smaller grupo, wins.
func rankStalenessRows(rows []entities.StalenessRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.ElapsedDays == nil && b.ElapsedDays == nil:
			// fall through to tie-breaks
		case a.ElapsedDays == nil:
			return false
		case b.ElapsedDays == nil:
			return true
		case *a.ElapsedDays != *b.ElapsedDays:
			return *a.ElapsedDays > *b.ElapsedDays
		}
		if a.LastSeenHour != b.LastSeenHour {
			return a.LastSeenHour < b.LastSeenHour
		}
		return a.Grupo < b.Grupo
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
}
