package usecase

import (
	"context"
	"sort"
	"sync"

	"resultados/internal/domain/entities"
	"resultados/internal/infrastructure/cache"
)

const (
	minHydrateConcurrency = 4
	maxHydrateConcurrency = 10
)

// materialize finishes a deduped draw list for the requested mode.
// Aggregated keeps only the stored prize count; detailed hydrates through
// the bounded pool.
func (u *DrawQueryUseCase) materialize(ctx context.Context, draws []entities.Draw, position int, mode QueryMode) ([]entities.Draw, error) {
	if mode == ModeAggregated {
		out := make([]entities.Draw, len(draws))
		for i, d := range draws {
			d.Prizes = []entities.Prize{}
			d.RawPrizes = nil
			out[i] = d
		}
		return out, nil
	}
	return u.hydrateAll(ctx, draws, position)
}

// hydrateAll resolves prizes for every draw under a concurrency cap scaled by
// the batch size. Workers run unordered; the materialized result preserves
// the input order.
func (u *DrawQueryUseCase) hydrateAll(ctx context.Context, draws []entities.Draw, position int) ([]entities.Draw, error) {
	if len(draws) == 0 {
		return []entities.Draw{}, nil
	}

	sem := make(chan struct{}, hydrationConcurrency(len(draws)))
	var wg sync.WaitGroup
	out := make([]entities.Draw, len(draws))
	errs := make([]error, len(draws))

	for i := range draws {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			d := draws[i]
			prizes, err := u.hydratePrizes(ctx, d, position)
			if err != nil {
				errs[i] = err
				return
			}
			d.Prizes = prizes
			d.RawPrizes = nil
			if position == 0 {
				d.PrizeCount = len(prizes)
			}
			out[i] = d
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func hydrationConcurrency(n int) int {
	switch {
	case n <= 10:
		return minHydrateConcurrency
	case n <= 40:
		return 6
	default:
		return maxHydrateConcurrency
	}
}

// hydratePrizes returns the validated prize list of one draw, optionally
// filtered by position. The full unfiltered set is what gets cached, so the
// same draw serves any later filter from memory.
func (u *DrawQueryUseCase) hydratePrizes(ctx context.Context, d entities.Draw, position int) ([]entities.Prize, error) {
	key := prizeCacheKey(d)
	if ps, ok := u.prizeCache.Get(key); ok {
		return filterByPosition(ps, position), nil
	}

	ps := parseRawPrizes(d.RawPrizes)
	if len(ps) == 0 && d.ID != "" {
		// Either no embedded prizes or an aggregated document whose shallow
		// array failed validation entirely; the child table is the truth.
		raw, err := u.prizes.ListByDrawID(ctx, d.ID)
		if err != nil {
			return nil, err
		}
		ps = parseRawPrizes(raw)
	}

	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Position < ps[j].Position })
	u.prizeCache.Set(key, ps)
	return filterByPosition(ps, position), nil
}

// parseRawPrizes validates and normalizes raw entries, dropping out-of-range
// ones silently; a dropped prize is never fatal for the enclosing draw.
func parseRawPrizes(raw []entities.RawPrize) []entities.Prize {
	var out []entities.Prize
	for _, r := range raw {
		if p, ok := entities.ParsePrize(r); ok {
			out = append(out, p)
		}
	}
	return out
}

func prizeCacheKey(d entities.Draw) string {
	if d.ID != "" {
		return cache.Key("prizes", d.ID)
	}
	return cache.Key("prizes", d.Partition, d.Date, d.Hour, d.RunCode)
}

func filterByPosition(ps []entities.Prize, position int) []entities.Prize {
	if position == 0 {
		return ps
	}
	out := make([]entities.Prize, 0, 1)
	for _, p := range ps {
		if p.Position == position {
			out = append(out, p)
		}
	}
	return out
}
