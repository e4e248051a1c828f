package interfaces

import (
	"context"

	"resultados/internal/domain/entities"
)

// IPrizeRepository abstracts the premios child table. Entries come back raw;
// validation and the digit-width rule live in the hydrator.

type IPrizeRepository interface {
	ListByDrawID(ctx context.Context, drawID string) ([]entities.RawPrize, error)
}
