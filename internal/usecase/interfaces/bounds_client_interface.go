package interfaces

import (
	"context"

	"resultados/internal/domain/entities"
)

// IBoundsClient abstracts the external aggregate bounds endpoint. Any error
// means "fall back to scanning the store"; a partial payload is never
// surfaced as a partial result.

type IBoundsClient interface {
	FetchBounds(ctx context.Context, partition string) (entities.PartitionBounds, error)
}
