package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	domservice "hisitter/internal/domain/service"
	"hisitter/internal/domain/user"
	reqdto "hisitter/internal/handler/dto/request"
	resdto "hisitter/internal/handler/dto/response"
	"hisitter/internal/handler/httperr"
	"hisitter/internal/handler/middleware"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary Book a service
// @Description Book a babysitter for a date and shift
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookServiceRequest true "Booking request"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services [post]
func (h *ServiceHandler) Book(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.BookServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	result, err := h.cmds.BookService(c.Request.Context(), cmd, actor)
	if err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ServiceID, actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load service", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromServiceView(view))
}

// @Summary List services
// @Description List services the authenticated user participates in
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ServiceListResponse
// @Failure 400 {object} map[string]string
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	cursor := cursorFromQuery(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.ListForActor(c.Request.Context(), actor, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceList(items, next))
}

// @Summary Get service
// @Description Get one service the authenticated user participates in
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, queries.ErrServiceAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

// @Summary Flag on-my-way
// @Description Babysitter signals departure within 90 minutes of the scheduled start
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id}/on-my-way [post]
func (h *ServiceHandler) OnMyWay(c *gin.Context) {
	h.lifecycle(c, h.cmds.MarkOnMyWay)
}

// @Summary Start service
// @Description Record the real start of the service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /services/{id}/start [post]
func (h *ServiceHandler) Start(c *gin.Context) {
	h.lifecycle(c, h.cmds.StartService)
}

// @Summary End service
// @Description Complete the service and derive duration and cost
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id}/end [post]
func (h *ServiceHandler) End(c *gin.Context) {
	h.lifecycle(c, h.cmds.EndService)
}

// @Summary Delete service
// @Description Soft delete a service that is not on-the-way or in progress
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
	h.lifecycle(c, h.cmds.DeleteService)
}

func (h *ServiceHandler) lifecycle(c *gin.Context, op func(ctx context.Context, serviceID uuid.UUID, actor user.Actor) error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := op(c.Request.Context(), id, actor); err != nil {
		h.abortWithCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ServiceHandler) abortWithCommandError(c *gin.Context, err error) {
	var tooEarly *domservice.TooEarlyError
	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.Is(err, commands.ErrBabysitterNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Babysitter not found", nil)
	case errors.Is(err, commands.ErrClientsOnly):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only clients can book services", nil)
	case errors.Is(err, domservice.ErrNotAssignedBabysitter):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the assigned babysitter can do that", nil)
	case errors.Is(err, domservice.ErrNotParticipant):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errors.As(err, &tooEarly):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Too early to head out", gin.H{
			"minutes_until_service": tooEarly.MinutesUntilService,
		})
	case errors.Is(err, domservice.ErrNoScheduledStart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service has no scheduled start", nil)
	case errors.Is(err, domservice.ErrAlreadyOnMyWay),
		errors.Is(err, domservice.ErrAlreadyStarted),
		errors.Is(err, domservice.ErrAlreadyCompleted),
		errors.Is(err, domservice.ErrNotStarted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Service is not in a valid state for that", nil)
	case errors.Is(err, domservice.ErrStillActive):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is on the way or in progress", nil)
	case errors.Is(err, domservice.ErrEndBeforeStart):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "End time must be after start time", nil)
	case errors.Is(err, commands.ErrNotBookable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Babysitter is not available for that date and shift", nil)
	case errors.Is(err, commands.ErrSlotAlreadyBooked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Babysitter is already booked for that date and shift", nil)
	case errors.Is(err, commands.ErrServiceConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Service was modified concurrently, retry", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
	default:
		httperr.AbortWithMappedError(c, err)
	}
}
