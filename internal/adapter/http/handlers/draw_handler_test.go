package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resultados/internal/adapter/http/handlers/mocks"
	"resultados/internal/domain/entities"
	"resultados/internal/usecase"
	"resultados/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func drawRouter(h *DrawHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/draws/bounds", h.GetBounds)
	r.GET("/v1/draws/day", h.GetDay)
	r.GET("/v1/draws/range", h.GetRange)
	r.GET("/v1/draws/staleness", h.GetStaleness)
	return r
}

func TestDrawHandler_GetBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/draws/bounds", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetBounds(gomock.Any(), "rio").Return(entities.PartitionBounds{
			Partition: "RJ", MinDate: "2003-01-02", MaxDate: "2024-05-10",
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/draws/bounds?scope=rio", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["partition"] != "RJ" || body["min_date"] != "2003-01-02" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("bounds unavailable maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetBounds(gomock.Any(), "xx").Return(entities.PartitionBounds{}, usecase.ErrBoundsUnavailable)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/draws/bounds?scope=xx", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestDrawHandler_GetDay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("forwards parsed query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetDay(gomock.Any(), usecase.DayQuery{
			Scope: "rio", Date: "2024-05-10", Hour: "14hs", Position: 7,
			Mode: usecase.ModeDetailed, Read: usecase.ReadCachePreferred,
		}).Return([]entities.Draw{
			{ID: "d1", Date: "2024-05-10", Hour: "14:00", Partition: "RJ", Prizes: []entities.Prize{}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/day?scope=rio&date=2024-05-10&hour=14hs&position=7", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["id"] != "d1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("empty day answers 200 with empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetDay(gomock.Any(), gomock.Any()).Return([]entities.Draw{}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/day?scope=rio&date=2024-05-12", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty json array, got %s", w.Body.String())
		}
	})

	t.Run("unknown mode rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/day?scope=rio&date=2024-05-10&mode=verbose", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid date maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetDay(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidDate)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/day?scope=rio&date=junk", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDrawHandler_GetRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing index maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetRange(gomock.Any(), gomock.Any()).Return(nil, &interfaces.MissingIndexError{
			Index: "uf-data-index", Err: errors.New("ValidationException"),
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/range?scope=rio&from=2020-01-01&to=2024-01-01", nil))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("store failure maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		uc.EXPECT().GetRange(gomock.Any(), gomock.Any()).Return(nil, errors.New("throttled"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/range?scope=rio&from=2024-05-01&to=2024-05-10", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestDrawHandler_GetStaleness(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		r := drawRouter(NewDrawHandler(uc))

		elapsed := 3
		uc.EXPECT().GetStaleness(gomock.Any(), usecase.StalenessQuery{
			Scope: "rio", From: "2024-05-01", To: "2024-05-10", Position: 1,
		}).Return([]entities.StalenessRow{
			{Grupo: 7, LastSeenDate: "2024-05-07", LastSeenHour: "14:00", ElapsedDays: &elapsed, Rank: 1},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/staleness?scope=rio&from=2024-05-01&to=2024-05-10&position=1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var rows []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &rows); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(rows) != 1 || rows[0]["grupo"].(float64) != 7 || rows[0]["rank"].(float64) != 1 {
			t.Fatalf("unexpected body: %v", rows)
		}
	})

	t.Run("superseded run answers 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDrawQueryUseCase(ctrl)
		h := NewDrawHandler(uc)
		r := drawRouter(h)

		uc.EXPECT().GetStaleness(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ usecase.StalenessQuery) ([]entities.StalenessRow, error) {
				// A newer request lands while this one is still scanning.
				h.stalenessRuns.Next()
				return []entities.StalenessRow{}, nil
			})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/v1/draws/staleness?scope=rio&from=2024-05-01&to=2024-05-10", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
