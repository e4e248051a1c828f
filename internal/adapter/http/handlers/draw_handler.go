package handlers

import (
	"errors"
	"net/http"

	request "resultados/internal/adapter/http/dto/request"
	response "resultados/internal/adapter/http/dto/response"
	"resultados/internal/usecase"
	"resultados/internal/usecase/interfaces"
	"resultados/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQueryPayload = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errRunSuperseded       = pkg.NewDomainErrorSimple("RUN_SUPERSEDED", "Request superseded by a newer staleness run", http.StatusConflict)
)

// DrawHandler handles HTTP requests for draw queries.

type DrawHandler struct {
	usecase usecase.IDrawQueryUseCase

	// stalenessRuns supersedes in-flight staleness scans: only the newest
	// run of the expensive backward walk is allowed to answer.
	stalenessRuns pkg.RunGuard
}

func NewDrawHandler(uc usecase.IDrawQueryUseCase) *DrawHandler {
	return &DrawHandler{usecase: uc}
}

func (h *DrawHandler) GetBounds(c *gin.Context) {
	var payload request.BoundsRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}

	bounds, err := h.usecase.GetBounds(c.Request.Context(), payload.ResolveScope())
	if err != nil {
		appErr := mapDrawError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBounds(bounds))
}

func (h *DrawHandler) GetDay(c *gin.Context) {
	var payload request.DayRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}
	mode, ok := usecase.ParseQueryMode(payload.Mode)
	if !ok {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}
	read, ok := usecase.ParseReadPolicy(payload.Read)
	if !ok {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}

	draws, err := h.usecase.GetDay(c.Request.Context(), usecase.DayQuery{
		Scope:    payload.ResolveScope(),
		Date:     payload.Date,
		Hour:     payload.Hour,
		Position: payload.Position,
		Mode:     mode,
		Read:     read,
	})
	if err != nil {
		appErr := mapDrawError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraws(draws))
}

func (h *DrawHandler) GetRange(c *gin.Context) {
	var payload request.RangeRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}
	mode, ok := usecase.ParseQueryMode(payload.Mode)
	if !ok {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}
	read, ok := usecase.ParseReadPolicy(payload.Read)
	if !ok {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}

	draws, err := h.usecase.GetRange(c.Request.Context(), usecase.RangeQuery{
		Scope:    payload.ResolveScope(),
		From:     payload.From,
		To:       payload.To,
		Position: payload.Position,
		Mode:     mode,
		Read:     read,
	})
	if err != nil {
		appErr := mapDrawError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraws(draws))
}

func (h *DrawHandler) GetStaleness(c *gin.Context) {
	var payload request.StalenessRequest
	if err := c.ShouldBindQuery(&payload); err != nil {
		c.JSON(errInvalidQueryPayload.HTTPStatus, errInvalidQueryPayload.ToHTTPError())
		return
	}

	run := h.stalenessRuns.Next()

	rows, err := h.usecase.GetStaleness(c.Request.Context(), usecase.StalenessQuery{
		Scope:    payload.ResolveScope(),
		From:     payload.From,
		To:       payload.To,
		Position: payload.Position,
		Baseline: payload.Baseline,
	})
	if err != nil {
		appErr := mapDrawError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !h.stalenessRuns.IsCurrent(run) {
		c.JSON(errRunSuperseded.HTTPStatus, errRunSuperseded.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStalenessRows(rows))
}

func mapDrawError(err error) *pkg.DomainError {
	switch {
	case errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidRange),
		errors.Is(err, usecase.ErrInvalidPosition):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBoundsUnavailable):
		return pkg.NewDomainErrorSimple("BOUNDS_UNAVAILABLE", "No bounds could be resolved for this scope", http.StatusNotFound)
	default:
		if _, ok := interfaces.AsMissingIndex(err); ok {
			return pkg.NewDomainError("MISSING_INDEX", err.Error(), http.StatusUnprocessableEntity, err)
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError, err)
	}
}
