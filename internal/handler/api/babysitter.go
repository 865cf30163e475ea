package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hisitter/internal/domain/availability"
	reqdto "hisitter/internal/handler/dto/request"
	resdto "hisitter/internal/handler/dto/response"
	"hisitter/internal/handler/httperr"
	"hisitter/internal/handler/middleware"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BabysitterHandler struct {
	cmds commands.BabysitterCommands
	q    queries.BabysitterQueries
}

func NewBabysitterHandler(cmds commands.BabysitterCommands, q queries.BabysitterQueries) *BabysitterHandler {
	return &BabysitterHandler{cmds: cmds, q: q}
}

// @Summary List available babysitters
// @Description List babysitters available for a date and shift, best reputation first
// @Tags babysitters
// @Produce json
// @Param date query string true "Service date (YYYY-MM-DD)"
// @Param shift query string true "Shift" Enums(morning, afternoon, evening, night)
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BabysitterListResponse
// @Failure 400 {object} map[string]string
// @Router /babysitters [get]
func (h *BabysitterHandler) ListAvailable(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}
	shift, err := availability.NewShift(c.Query("shift"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid shift", nil)
		return
	}

	cursor := cursorFromQuery(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.ListAvailable(c.Request.Context(), date, shift, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBabysitterList(items, next))
}

// @Summary Get babysitter profile
// @Description Get a babysitter's public profile including weekly schedule
// @Tags babysitters
// @Produce json
// @Param id path string true "Babysitter user ID"
// @Success 200 {object} resdto.BabysitterResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /babysitters/{id} [get]
func (h *BabysitterHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByUserID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBabysitterNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Babysitter not found", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBabysitterView(view))
}

// @Summary Update weekly schedule
// @Description Replace the authenticated babysitter's weekly availability
// @Tags babysitters
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateScheduleRequest true "Schedule"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /babysitters/me/schedule [put]
func (h *BabysitterHandler) UpdateSchedule(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateSchedule(c.Request.Context(), actor, req.ToSlotInputs()); err != nil {
		switch {
		case errors.Is(err, commands.ErrBabysittersOnly):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only babysitters can manage a schedule", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid schedule", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func cursorFromQuery(c *gin.Context) *queries.Cursor {
	after := c.Query("cursor")
	if after == "" {
		return nil
	}
	return &queries.Cursor{After: after}
}
