package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"resultados/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func stalenessDraw(id, date, hour string, grupo int) entities.Draw {
	return drawOn(id, date, hour, entities.RawPrize{Grupo: grupo, Posicao: 1, Numero: "1234"})
}

func rowFor(rows []entities.StalenessRow, grupo int) entities.StalenessRow {
	for _, r := range rows {
		if r.Grupo == grupo {
			return r
		}
	}
	return entities.StalenessRow{}
}

func TestDrawQueryUseCase_GetStaleness(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid position", func(t *testing.T) {
		uc, _, _, _ := newTestUseCase(t)
		_, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-05-01", To: "2024-05-10", Position: 11,
		})
		if !errors.Is(err, ErrInvalidPosition) {
			t.Fatalf("expected ErrInvalidPosition, got %v", err)
		}
	})

	t.Run("ranks grupos by elapsed days with unseen last", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-10").Return([]entities.Draw{
			stalenessDraw("a", "2024-05-10", "14:00", 5),
			stalenessDraw("b", "2024-05-08", "14:00", 7),
			stalenessDraw("c", "2024-05-03", "14:00", 12),
			stalenessDraw("d", "2024-05-09", "14:00", 12), // newer sighting wins
		}, nil)

		rows, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-05-01", To: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != entities.GrupoCount {
			t.Fatalf("expected %d rows, got %d", entities.GrupoCount, len(rows))
		}

		g7 := rowFor(rows, 7)
		if g7.ElapsedDays == nil || *g7.ElapsedDays != 2 || g7.Rank != 1 {
			t.Fatalf("grupo 7: expected elapsed 2 rank 1, got %+v", g7)
		}
		g12 := rowFor(rows, 12)
		if g12.LastSeenDate != "2024-05-09" || g12.ElapsedDays == nil || *g12.ElapsedDays != 1 || g12.Rank != 2 {
			t.Fatalf("grupo 12: expected last seen 2024-05-09 elapsed 1 rank 2, got %+v", g12)
		}
		g5 := rowFor(rows, 5)
		if g5.ElapsedDays == nil || *g5.ElapsedDays != 0 || g5.Rank != 3 {
			t.Fatalf("grupo 5: expected elapsed 0 rank 3, got %+v", g5)
		}

		// Unseen grupos fill ranks 4..25 ordered by grupo number.
		g1 := rowFor(rows, 1)
		if g1.ElapsedDays != nil || g1.Rank != 4 || g1.LastSeenDate != "" {
			t.Fatalf("grupo 1: expected unseen at rank 4, got %+v", g1)
		}
		if rows[len(rows)-1].Grupo != 25 {
			t.Fatalf("expected grupo 25 ranked last, got %+v", rows[len(rows)-1])
		}
	})

	t.Run("equal elapsed breaks ties by earlier hour then smaller grupo", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-10").Return([]entities.Draw{
			stalenessDraw("a", "2024-05-10", "14:00", 3),
			stalenessDraw("b", "2024-05-10", "11:00", 9),
			stalenessDraw("c", "2024-05-10", "11:00", 2),
		}, nil)

		rows, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-05-01", To: "2024-05-10",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rows[0].Grupo != 2 || rows[1].Grupo != 9 || rows[2].Grupo != 3 {
			t.Fatalf("expected order 2, 9, 3, got %d, %d, %d", rows[0].Grupo, rows[1].Grupo, rows[2].Grupo)
		}
	})

	t.Run("stops scanning once every grupo has been sighted", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		all := make([]entities.Draw, 0, entities.GrupoCount)
		for g := 1; g <= entities.GrupoCount; g++ {
			all = append(all, stalenessDraw(fmt.Sprintf("d%d", g), "2024-03-15", "14:00", g))
		}
		// Only the newest window is read; January and February are never touched.
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-03-02", "2024-03-31").Return(all, nil).Times(1)

		rows, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-01-01", To: "2024-03-31",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, r := range rows {
			if r.ElapsedDays == nil || *r.ElapsedDays != 16 {
				t.Fatalf("grupo %d: expected elapsed 16, got %+v", r.Grupo, r)
			}
		}
	})

	t.Run("explicit baseline shifts elapsed days", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-10").Return([]entities.Draw{
			stalenessDraw("a", "2024-05-10", "14:00", 5),
		}, nil)

		rows, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-05-01", To: "2024-05-10", Baseline: "2024-05-20",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		g5 := rowFor(rows, 5)
		if g5.ElapsedDays == nil || *g5.ElapsedDays != 10 {
			t.Fatalf("grupo 5: expected elapsed 10 against the baseline, got %+v", g5)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		uc, draws, _, _ := newTestUseCase(t)
		draws.EXPECT().QueryByDateRange(gomock.Any(), "RJ", "2024-05-01", "2024-05-10").Return(nil, errors.New("throttled"))
		_, err := uc.GetStaleness(ctx, StalenessQuery{
			Scope: "rj", From: "2024-05-01", To: "2024-05-10",
		})
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
