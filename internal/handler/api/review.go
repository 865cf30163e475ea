package api

import (
	"errors"
	"net/http"
	"strconv"

	domreview "hisitter/internal/domain/review"
	reqdto "hisitter/internal/handler/dto/request"
	resdto "hisitter/internal/handler/dto/response"
	"hisitter/internal/handler/httperr"
	"hisitter/internal/handler/middleware"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a completed service as its client
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Review request"
// @Success 201 {object} resdto.ReviewCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), req.ToCommand(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrServiceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
		case errors.Is(err, commands.ErrDuplicateReview):
			httperr.AbortWithError(c, http.StatusConflict, err, "Service already has a review", nil)
		case errors.Is(err, domreview.ErrNotServiceClient):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the service client can review it", nil)
		case errors.Is(err, domreview.ErrServiceNotCompleted):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Service is not completed yet", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid review data", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.ReviewCreatedResponse{ReviewID: result.ReviewID.String()})
}

// @Summary Get review for a service
// @Tags reviews
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /services/{id}/review [get]
func (h *ReviewHandler) GetByService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.q.GetByService(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReviewNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Review not found", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

// @Summary List reviews for a babysitter
// @Tags reviews
// @Produce json
// @Param id path string true "Babysitter user ID"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} map[string]string
// @Router /babysitters/{id}/reviews [get]
func (h *ReviewHandler) ListByBabysitter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	cursor := cursorFromQuery(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	items, next, err := h.q.ListByBabysitter(c.Request.Context(), id, cursor, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		default:
			httperr.AbortWithMappedError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}
