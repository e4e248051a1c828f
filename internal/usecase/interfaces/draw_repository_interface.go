package interfaces

import (
	"context"

	"resultados/internal/domain/entities"
)

// IDrawRepository abstracts DynamoDB access to draw documents.
//
// Implementations run the partition-field cascade (uf, then banca, each over
// its composite GSI) and inject the scope discriminator where required, so
// callers only ever reason about canonical partitions and canonical days.
// Range errors caused by a missing composite index are reported as
// *MissingIndexError so callers can degrade to a chunked day-by-day scan.

type IDrawRepository interface {
	// QueryByDate returns the draws of one calendar day.
	QueryByDate(ctx context.Context, partition, date string) ([]entities.Draw, error)

	// QueryByDateRange returns the draws with date in [from, to], inclusive.
	QueryByDateRange(ctx context.Context, partition, from, to string) ([]entities.Draw, error)

	// SampleByDate returns up to limit draws ordered by date (descending when
	// desc), tie-broken by document id. Used by bounds resolution.
	SampleByDate(ctx context.Context, partition string, limit int, desc bool) ([]entities.Draw, error)

	// SampleByID returns up to limit draws ordered by raw document identity.
	// Last-resort bounds sampling for partitions with sparse date coverage.
	SampleByID(ctx context.Context, partition string, limit int, desc bool) ([]entities.Draw, error)
}
