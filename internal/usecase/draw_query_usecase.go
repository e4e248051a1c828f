package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"resultados/internal/domain/entities"
	"resultados/internal/domain/normalize"
	"resultados/internal/domain/scope"
	"resultados/internal/infrastructure/cache"
	"resultados/internal/infrastructure/logging"
	"resultados/internal/usecase/interfaces"
)

var (
	ErrInvalidScope      = errors.New("invalid scope")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrBoundsUnavailable = errors.New("bounds unavailable for partition")
)

// QueryMode selects how much of a draw is materialized: detailed hydrates
// prizes, aggregated returns empty prize lists with only the stored count.
type QueryMode string

const (
	ModeDetailed   QueryMode = "detailed"
	ModeAggregated QueryMode = "aggregated"
)

func (m QueryMode) orDefault() QueryMode {
	if m == "" {
		return ModeDetailed
	}
	return m
}

// ParseQueryMode accepts the wire spellings of QueryMode.
func ParseQueryMode(s string) (QueryMode, bool) {
	switch s {
	case "", string(ModeDetailed):
		return ModeDetailed, true
	case string(ModeAggregated):
		return ModeAggregated, true
	default:
		return "", false
	}
}

// ReadPolicy orders the TTL cache and the store for a read. CachePreferred
// serves a warm non-empty cache entry directly; ServerPreferred goes to the
// store first and only falls back to the cache when the store fails or
// answers empty.
type ReadPolicy string

const (
	ReadCachePreferred  ReadPolicy = "cache"
	ReadServerPreferred ReadPolicy = "server"
)

func (p ReadPolicy) orDefault() ReadPolicy {
	if p == "" {
		return ReadCachePreferred
	}
	return p
}

// ParseReadPolicy accepts the wire spellings of ReadPolicy.
func ParseReadPolicy(s string) (ReadPolicy, bool) {
	switch s {
	case "", string(ReadCachePreferred):
		return ReadCachePreferred, true
	case string(ReadServerPreferred):
		return ReadServerPreferred, true
	default:
		return "", false
	}
}

// DayQuery asks for the draws of one calendar day.
type DayQuery struct {
	Scope    string
	Date     string
	Hour     string // optional; any accepted hour form, bucketed to HHh
	Position int    // optional prize position filter, 0 means all
	Mode     QueryMode
	Read     ReadPolicy
}

// RangeQuery asks for the draws of an inclusive date range.
type RangeQuery struct {
	Scope    string
	From     string
	To       string
	Position int
	Mode     QueryMode
	Read     ReadPolicy
}

// StalenessQuery asks for the atraso ranking of all grupos at one position.
type StalenessQuery struct {
	Scope    string
	From     string
	To       string
	Position int    // defaults to 1
	Baseline string // defaults to To
}

// IDrawQueryUseCase exposes the read operations of the query layer.
type IDrawQueryUseCase interface {
	GetBounds(ctx context.Context, scopeRaw string) (entities.PartitionBounds, error)
	GetDay(ctx context.Context, q DayQuery) ([]entities.Draw, error)
	GetRange(ctx context.Context, q RangeQuery) ([]entities.Draw, error)
	GetStaleness(ctx context.Context, q StalenessQuery) ([]entities.StalenessRow, error)
}

const (
	// dayFallbackCeilingDays bounds the worst-case fan-out of the chunked
	// day-by-day fallbacks; beyond it the original failure surfaces.
	dayFallbackCeilingDays = 120

	// aggregatedChunkDays is the multi-day chunk size of the cheap mode.
	aggregatedChunkDays = 60
)

type DrawQueryUseCase struct {
	draws  interfaces.IDrawRepository
	prizes interfaces.IPrizeRepository
	bounds interfaces.IBoundsClient

	boundsCache *cache.Cache[entities.PartitionBounds]
	drawsCache  *cache.Cache[[]entities.Draw]
	prizeCache  *cache.Cache[[]entities.Prize]
	rowsCache   *cache.Cache[[]entities.StalenessRow]

	log zerolog.Logger
}

var _ IDrawQueryUseCase = (*DrawQueryUseCase)(nil)

func NewDrawQueryUseCase(
	draws interfaces.IDrawRepository,
	prizes interfaces.IPrizeRepository,
	bounds interfaces.IBoundsClient,
) *DrawQueryUseCase {
	ttl := cacheTTLFromEnv()
	return &DrawQueryUseCase{
		draws:       draws,
		prizes:      prizes,
		bounds:      bounds,
		boundsCache: cache.New[entities.PartitionBounds](ttl),
		drawsCache:  cache.New[[]entities.Draw](ttl),
		prizeCache:  cache.New[[]entities.Prize](ttl),
		rowsCache:   cache.New[[]entities.StalenessRow](ttl),
		log:         logging.For("draw-query"),
	}
}

func cacheTTLFromEnv() time.Duration {
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return cache.DefaultTTL
}

func (u *DrawQueryUseCase) GetDay(ctx context.Context, q DayQuery) ([]entities.Draw, error) {
	partition := scope.Resolve(q.Scope)
	if partition == "" {
		return nil, ErrInvalidScope
	}
	date := normalize.Date(q.Date)
	if date == "" {
		return nil, ErrInvalidDate
	}
	if q.Position < 0 || q.Position > entities.MaxPosition {
		return nil, ErrInvalidPosition
	}
	mode := q.Mode.orDefault()
	read := q.Read.orDefault()
	bucket := normalize.HourBucket(q.Hour)

	key := cache.Key("day", partition, date, itoa(q.Position), bucket, string(mode))
	if read == ReadCachePreferred {
		if v, ok := u.drawsCache.Get(key); ok && len(v) > 0 {
			return v, nil
		}
	}

	draws, err := u.draws.QueryByDate(ctx, partition, date)
	if err != nil {
		if read == ReadServerPreferred {
			if v, ok := u.drawsCache.Get(key); ok {
				u.log.Warn().Err(err).Str("key", key).Msg("store read failed, serving cached day")
				return v, nil
			}
		}
		return nil, err
	}

	draws = DedupDraws(draws)
	if bucket != "" {
		draws = filterByHourBucket(draws, bucket)
	}
	draws, err = u.materialize(ctx, draws, q.Position, mode)
	if err != nil {
		return nil, err
	}
	u.drawsCache.Set(key, draws)
	return draws, nil
}

func (u *DrawQueryUseCase) GetRange(ctx context.Context, q RangeQuery) ([]entities.Draw, error) {
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
	if q.Position < 0 || q.Position > entities.MaxPosition {
		return nil, ErrInvalidPosition
	}
	return u.rangeDraws(ctx, partition, from, to, q.Position, q.Mode.orDefault(), q.Read.orDefault())
}

// rangeDraws is the shared range core: direct range query, degradation to
// chunked scans, dedup, hydration and memoization. Inputs are already
// canonical.
func (u *DrawQueryUseCase) rangeDraws(ctx context.Context, partition, from, to string, position int, mode QueryMode, read ReadPolicy) ([]entities.Draw, error) {
	key := cache.Key("range", partition, from, to, itoa(position), string(mode))
	if read == ReadCachePreferred {
		if v, ok := u.drawsCache.Get(key); ok && len(v) > 0 {
			return v, nil
		}
	}

	span := daySpan(from, to)

	var draws []entities.Draw
	var err error
	if mode == ModeAggregated {
		// Cheap mode never pays for the wide direct query.
		draws, err = u.chunkedRange(ctx, partition, from, to, aggregatedChunkDays)
	} else {
		draws, err = u.draws.QueryByDateRange(ctx, partition, from, to)
		if err != nil {
			if mie, ok := interfaces.AsMissingIndex(err); ok {
				if span <= dayFallbackCeilingDays {
					u.log.Warn().Str("partition", partition).Str("from", from).Str("to", to).
						Msg("composite index missing, degrading to day-by-day")
					draws, err = u.chunkedRange(ctx, partition, from, to, 1)
				} else {
					err = fmt.Errorf(
						"range of %d days cannot be served without the %s index; create it or narrow the range to %d days: %w",
						span, mie.Index, dayFallbackCeilingDays, err)
				}
			}
		}
		if err == nil && len(draws) == 0 && span > 1 && span <= dayFallbackCeilingDays {
			// A zero-document range on a short span is more often partial
			// composite-index coverage than a truly empty window.
			draws, err = u.chunkedRange(ctx, partition, from, to, 1)
		}
	}
	if err != nil {
		if read == ReadServerPreferred {
			if v, ok := u.drawsCache.Get(key); ok {
				u.log.Warn().Err(err).Str("key", key).Msg("store read failed, serving cached range")
				return v, nil
			}
		}
		return nil, err
	}

	draws = DedupDraws(draws)
	draws, err = u.materialize(ctx, draws, position, mode)
	if err != nil {
		return nil, err
	}
	u.drawsCache.Set(key, draws)
	return draws, nil
}

func filterByHourBucket(draws []entities.Draw, bucket string) []entities.Draw {
	out := draws[:0:0]
	for _, d := range draws {
		if normalize.HourBucket(d.Hour) == bucket {
			out = append(out, d)
		}
	}
	return out
}

// daySpan counts the calendar days of an inclusive canonical range.
func daySpan(from, to string) int {
	n, err := normalize.DaysBetween(from, to)
	if err != nil {
		return 0
	}
	return n + 1
}

func itoa(n int) string { return strconv.Itoa(n) }
