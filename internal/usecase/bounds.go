package usecase

import (
	"context"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
	"resultados/internal/domain/scope"
	"resultados/internal/infrastructure/cache"
)

const (
	dateSampleLimit = 5
	idSampleLimit   = 25

	// recentProbeDays is how far back the backward probe walks looking for
	// the newest day that actually has documents.
	recentProbeDays = 45

	// staleMaxToleranceDays: an ordered-scan maximum older than this many
	// days is suspect (stale descending index) and gets probe-corrected.
	staleMaxToleranceDays = 7
)

// GetBounds resolves the earliest/latest available date for a scope. The
// partition floor is always applied before the result is cached or returned.
func (u *DrawQueryUseCase) GetBounds(ctx context.Context, scopeRaw string) (entities.PartitionBounds, error) {
	partition := scope.Resolve(scopeRaw)
	if partition == "" {
		return entities.PartitionBounds{}, ErrInvalidScope
	}

	key := cache.Key("bounds", partition)
	if b, ok := u.boundsCache.Get(key); ok {
		return b, nil
	}

	b, err := u.resolveBounds(ctx, partition)
	if err != nil {
		return entities.PartitionBounds{}, err
	}
	b = scope.ClampBounds(b)
	u.boundsCache.Set(key, b)
	return b, nil
}

// boundsStrategy is one independent way of deriving bounds; strategies are
// tried in order of preference and the first that answers wins.
type boundsStrategy struct {
	name string
	run  func(ctx context.Context, partition string) (entities.PartitionBounds, bool)
}

func (u *DrawQueryUseCase) resolveBounds(ctx context.Context, partition string) (entities.PartitionBounds, error) {
	strategies := []boundsStrategy{
		{name: "aggregate-endpoint", run: u.boundsFromEndpoint},
		{name: "ordered-scan", run: u.boundsFromOrderedScan},
		{name: "recent-probe", run: u.boundsFromRecentProbe},
		{name: "id-edge-sample", run: u.boundsFromIDEdges},
	}
	for _, s := range strategies {
		if b, ok := s.run(ctx, partition); ok {
			u.log.Debug().Str("partition", partition).Str("strategy", s.name).
				Str("min", b.MinDate).Str("max", b.MaxDate).Msg("bounds resolved")
			return b, nil
		}
	}
	return entities.PartitionBounds{}, ErrBoundsUnavailable
}

func (u *DrawQueryUseCase) boundsFromEndpoint(ctx context.Context, partition string) (entities.PartitionBounds, bool) {
	b, err := u.bounds.FetchBounds(ctx, partition)
	if err != nil {
		u.log.Debug().Err(err).Str("partition", partition).Msg("aggregate bounds endpoint unavailable")
		return entities.PartitionBounds{}, false
	}
	if !b.Known() || b.MinDate > b.MaxDate {
		return entities.PartitionBounds{}, false
	}
	b.Partition = partition
	return b, true
}

// boundsFromOrderedScan samples both edges of the date index. A descending
// index can lag behind ingestion, so a maximum that looks old is verified
// against the backward probe and raised when the probe finds newer days.
func (u *DrawQueryUseCase) boundsFromOrderedScan(ctx context.Context, partition string) (entities.PartitionBounds, bool) {
	asc, err := u.draws.SampleByDate(ctx, partition, dateSampleLimit, false)
	if err != nil || len(asc) == 0 {
		return entities.PartitionBounds{}, false
	}
	desc, err := u.draws.SampleByDate(ctx, partition, dateSampleLimit, true)
	if err != nil || len(desc) == 0 {
		return entities.PartitionBounds{}, false
	}

	min := minDate(asc)
	max := maxDate(desc)
	if min == "" || max == "" {
		return entities.PartitionBounds{}, false
	}

	if stale, err := normalize.DaysBetween(max, normalize.Today()); err == nil && stale > staleMaxToleranceDays {
		if probed, ok := u.probeRecentDay(ctx, partition); ok && probed > max {
			u.log.Debug().Str("partition", partition).Str("stale", max).Str("probed", probed).
				Msg("ordered-scan maximum corrected by probe")
			max = probed
		}
	}

	return entities.PartitionBounds{Partition: partition, MinDate: min, MaxDate: max}, true
}

func (u *DrawQueryUseCase) boundsFromRecentProbe(ctx context.Context, partition string) (entities.PartitionBounds, bool) {
	day, ok := u.probeRecentDay(ctx, partition)
	if !ok {
		return entities.PartitionBounds{}, false
	}
	// Only the live maximum is provable this way; the floor clamp fills the
	// minimum for partitions that have one.
	return entities.PartitionBounds{Partition: partition, MaxDate: day}, true
}

func (u *DrawQueryUseCase) boundsFromIDEdges(ctx context.Context, partition string) (entities.PartitionBounds, bool) {
	head, err := u.draws.SampleByID(ctx, partition, idSampleLimit, false)
	if err != nil {
		return entities.PartitionBounds{}, false
	}
	tail, err := u.draws.SampleByID(ctx, partition, idSampleLimit, true)
	if err != nil {
		return entities.PartitionBounds{}, false
	}

	union := append(append([]entities.Draw{}, head...), tail...)
	min, max := minDate(union), maxDate(union)
	if min == "" || max == "" {
		return entities.PartitionBounds{}, false
	}
	return entities.PartitionBounds{Partition: partition, MinDate: min, MaxDate: max}, true
}

// probeRecentDay walks the last recentProbeDays calendar days, newest first,
// and returns the first day with at least one document. Individual day
// failures are skipped and probing continues with the previous day.
func (u *DrawQueryUseCase) probeRecentDay(ctx context.Context, partition string) (string, bool) {
	day := normalize.Today()
	for i := 0; i < recentProbeDays; i++ {
		draws, err := u.draws.QueryByDate(ctx, partition, day)
		if err == nil && len(draws) > 0 {
			return day, true
		}
		day = normalize.AddDays(day, -1)
		if day == "" {
			break
		}
	}
	return "", false
}

func minDate(draws []entities.Draw) string {
	min := ""
	for _, d := range draws {
		if d.Date == "" {
			continue
		}
		if min == "" || d.Date < min {
			min = d.Date
		}
	}
	return min
}

func maxDate(draws []entities.Draw) string {
	max := ""
	for _, d := range draws {
		if d.Date > max {
			max = d.Date
		}
	}
	return max
}
