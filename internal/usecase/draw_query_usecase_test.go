package usecase

import (
	"context"
	"errors"
	"testing"

	"resultados/internal/domain/entities"
	"resultados/internal/usecase/interfaces"
	mock_interfaces "resultados/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTestUseCase(t *testing.T) (*DrawQueryUseCase, *mock_interfaces.MockIDrawRepository, *mock_interfaces.MockIPrizeRepository, *mock_interfaces.MockIBoundsClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	draws := mock_interfaces.NewMockIDrawRepository(ctrl)
	prizes := mock_interfaces.NewMockIPrizeRepository(ctrl)
	bounds := mock_interfaces.NewMockIBoundsClient(ctrl)
	return NewDrawQueryUseCase(draws, prizes, bounds), draws, prizes, bounds
}

func drawOn(id, date, hour string, raw ...entities.RawPrize) entities.Draw {
	return entities.Draw{ID: id, Date: date, Hour: hour, RawPrizes: raw}
}

func TestDrawQueryUseCase_GetDay(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid scope", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.GetDay(ctx, DayQuery{Scope: "  ", Date: "2024-05-10"})
		if !errors.Is(err, ErrInvalidScope) {
			t.Fatalf("expected ErrInvalidScope, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.GetDay(ctx, DayQuery{Scope: "rio", Date: "not-a-date"})
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})

	t.Run("invalid position", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.GetDay(ctx, DayQuery{Scope: "rio", Date: "2024-05-10", Position: 11})
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("expected ErrInvalidPosition, got %v", err)
		}
	})

	t.Run("detailed day with embedded prizes", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return([]entities.Draw{
			drawOn("d1", "2024-05-10", "14:00",
				entities.RawPrize{Grupo: 12, Posicao: 1, Numero: "4645"},
				entities.RawPrize{Grupo: 3, Posicao: 7, Numero: 7},
			),
		}, nil)

		got, err := uc.GetDay(ctx, DayQuery{Scope: "rio de janeiro", Date: "10-05-2024"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || len(got[0].Prizes) != 2 {
			t.Fatalf("expected 1 draw with 2 prizes, got %+v", got)
		}
		if got[0].Prizes[1].Numero != "007" {
			t.Fatalf("expected padded 3-digit numero at position 7, got %q", got[0].Prizes[1].Numero)
		}
		if got[0].PrizeCount != 2 {
			t.Fatalf("expected prize count 2, got %d", got[0].PrizeCount)
		}
	})

	t.Run("hour filter buckets loose forms", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return([]entities.Draw{
			drawOn("d1", "2024-05-10", "14:20"),
			drawOn("d2", "2024-05-10", "18:00"),
		}, nil)

		got, err := uc.GetDay(ctx, DayQuery{Scope: "rj", Date: "2024-05-10", Hour: "14hs"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d1" {
			t.Fatalf("expected only the 14h draw, got %+v", got)
		}
	})

	t.Run("aggregated mode skips hydration", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return([]entities.Draw{
			{ID: "d1", Date: "2024-05-10", Hour: "14:00", PrizeCount: 7},
		}, nil)

		got, err := uc.GetDay(ctx, DayQuery{Scope: "rj", Date: "2024-05-10", Mode: ModeAggregated})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || len(got[0].Prizes) != 0 || got[0].PrizeCount != 7 {
			t.Fatalf("expected empty prizes with count 7, got %+v", got)
		}
	})

	t.Run("cache preferred serves warm entry without store call", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return([]entities.Draw{
			drawOn("d1", "2024-05-10", "14:00"),
		}, nil).Times(1)

		q := DayQuery{Scope: "rj", Date: "2024-05-10"}
		if _, err := uc.GetDay(ctx, q); err != nil {
			t.Fatalf("warm-up failed: %v", err)
		}
		got, err := uc.GetDay(ctx, q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d1" {
			t.Fatalf("expected cached draw, got %+v", got)
		}
	})

	t.Run("server preferred rereads the store and falls back to cache on error", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		q := DayQuery{Scope: "rj", Date: "2024-05-10", Read: ReadServerPreferred}

		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return([]entities.Draw{
			drawOn("d1", "2024-05-10", "14:00"),
		}, nil)
		if _, err := uc.GetDay(ctx, q); err != nil {
			t.Fatalf("warm-up failed: %v", err)
		}

		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return(nil, errors.New("throttled"))
		got, err := uc.GetDay(ctx, q)
		if err != nil {
			t.Fatalf("expected cached fallback, got error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d1" {
			t.Fatalf("expected cached draw, got %+v", got)
		}
	})

	t.Run("store error with cold cache surfaces", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-10").Return(nil, errors.New("throttled"))
		_, err := uc.GetDay(ctx, DayQuery{Scope: "rj", Date: "2024-05-10", Read: ReadServerPreferred})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDrawQueryUseCase_GetRange(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted range", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.GetRange(ctx, RangeQuery{Scope: "rj", From: "2024-05-10", To: "2024-05-01"})
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("direct range query", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-03").Return([]entities.Draw{
			drawOn("d1", "2024-05-01", "14:00"),
			drawOn("d2", "2024-05-02", "14:00"),
		}, nil)

		got, err := uc.GetRange(ctx, RangeQuery{Scope: "rj", From: "2024-05-01", To: "2024-05-03"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 draws, got %d", len(got))
		}
	})

	t.Run("missing index degrades to day-by-day within ceiling", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		mie := &interfaces.MissingIndexError{Index: "uf-data-index", Err: errors.New("ValidationException")}
		draws.EXPECT().QueryByDateRange(gomock.Any(), "FEDERAL", "2024-01-01", "2024-04-09").Return(nil, mie)
		// 100 days, each served by the equality path.
		draws.EXPECT().QueryByDate(gomock.Any(), "FEDERAL", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, date string) ([]entities.Draw, error) {
				if date == "2024-02-15" {
					return []entities.Draw{drawOn("d1", "2024-02-15", "19:00")}, nil
				}
				return nil, nil
			}).Times(100)

		got, err := uc.GetRange(ctx, RangeQuery{Scope: "federal", From: "2024-01-01", To: "2024-04-09"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "d1" {
			t.Fatalf("expected the one surviving draw, got %+v", got)
		}
	})

	t.Run("missing index beyond ceiling names the index", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		mie := &interfaces.MissingIndexError{Index: "uf-data-index", Err: errors.New("ValidationException")}
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2020-01-01", "2024-01-01").Return(nil, mie)

		_, err := uc.GetRange(ctx, RangeQuery{Scope: "rj", From: "2020-01-01", To: "2024-01-01"})
		if err == nil {
			t.Fatal("expected error")
		}
		if _, ok := interfaces.AsMissingIndex(err); !ok {
			t.Fatalf("expected wrapped MissingIndexError, got %v", err)
		}
	})

	t.Run("empty short range retries day-by-day", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-02").Return(nil, nil)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-01").Return([]entities.Draw{
			drawOn("d1", "2024-05-01", "14:00"),
		}, nil)
		draws.EXPECT().QueryByDate(gomock.Any(), "RJ", "2024-05-02").Return(nil, nil)

		got, err := uc.GetRange(ctx, RangeQuery{Scope: "rj", From: "2024-05-01", To: "2024-05-02"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 draw from the retry, got %d", len(got))
		}
	})

	t.Run("aggregated mode chunks instead of direct range", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		// 90 days split into 60+30; no QueryByDateRange over the full span.
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-01-01", "2024-02-29").Return([]entities.Draw{
			{ID: "d1", Date: "2024-01-15", Hour: "14:00", PrizeCount: 7},
		}, nil)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-03-01", "2024-03-30").Return(nil, nil)

		got, err := uc.GetRange(ctx, RangeQuery{
			Scope: "rj", From: "2024-01-01", To: "2024-03-30", Mode: ModeAggregated,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || len(got[0].Prizes) != 0 || got[0].PrizeCount != 7 {
			t.Fatalf("expected aggregated draw with count 7, got %+v", got)
		}
	})
}
