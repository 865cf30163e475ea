//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	domreview "hisitter/internal/domain/review"
	"hisitter/internal/domain/user"
	"hisitter/internal/handler/api"
	resdto "hisitter/internal/handler/dto/response"
	"hisitter/internal/usecase/commands"
	"hisitter/internal/usecase/queries"
	"hisitter/tests/common/builder"
	"hisitter/tests/common/httptest"
	commandsmock "hisitter/tests/mock/commands"
	queriesmock "hisitter/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actor        user.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	role, _ := user.NewRole("client")
	s.actor = user.NewActor(uuid.New(), role)

	// Stand-in for RequireAuth: inject the actor the middleware would set
	injectActor := func(c *gin.Context) {
		c.Set("user_id", s.actor.ID)
		c.Set("user_role", s.actor.Role)
	}

	s.router.POST("/reviews", injectActor, s.handler.Create)
	s.router.GET("/services/:id/review", s.handler.GetByService)
	s.router.GET("/babysitters/:id/reviews", s.handler.ListByBabysitter)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	b := builder.NewReviewBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 with the review id", func() {
		reviewID := uuid.New()
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), b.BuildCreateCommand(), s.actor).
			Return(&commands.CreateReviewResult{ReviewID: reviewID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")

		var response resdto.ReviewCreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reviewID.String(), response.ReviewID)
	})

	s.Run("error: 409 when the service already has a review", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, commands.ErrDuplicateReview).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already has a review")
	})

	s.Run("error: 403 when the reviewer is not the client", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, domreview.ErrNotServiceClient).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("error: 422 when the service is not completed", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, domreview.ErrServiceNotCompleted).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("error: 404 when the service does not exist", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actor).
			Return(nil, commands.ErrServiceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", reqBody, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 when the rating is out of range", func() {
		bad := b.BuildCreateRequestDTO()
		bad.Rating = 6
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews", bad, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReviewHandlerTestSuite) TestGetByService() {
	view := builder.NewReviewBuilder().BuildView()
	url := "/services/" + view.ServiceID.String() + "/review"

	s.Run("success: returns the review", func() {
		s.mockQueries.EXPECT().GetByService(gomock.Any(), view.ServiceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response.ID)
		s.Equal(view.Rating, response.Rating)
	})

	s.Run("error: 404 when no review exists", func() {
		s.mockQueries.EXPECT().GetByService(gomock.Any(), view.ServiceID).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/nope/review", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReviewHandlerTestSuite) TestListByBabysitter() {
	babysitterID := uuid.New()
	url := "/babysitters/" + babysitterID.String() + "/reviews"

	s.Run("success: returns the page with its cursor", func() {
		createdAt := time.Date(2026, time.June, 10, 12, 0, 0, 0, time.UTC)
		views := []*queries.ReviewView{
			builder.NewReviewBuilder().WithRating(5).With(func(b *builder.ReviewBuilder) { b.CreatedAt = createdAt }).BuildView(),
			builder.NewReviewBuilder().WithRating(3).With(func(b *builder.ReviewBuilder) { b.CreatedAt = createdAt.Add(-time.Hour) }).BuildView(),
		}
		next := &queries.Cursor{After: queries.EncodeAfterCursor(views[1].CreatedAt, views[1].ID)}
		s.mockQueries.EXPECT().ListByBabysitter(gomock.Any(), babysitterID, nil, 20).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		if diff := cmp.Diff(resdto.FromReviewList(views, next), &response); diff != "" {
			s.Failf("response mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 on a broken cursor", func() {
		s.mockQueries.EXPECT().ListByBabysitter(gomock.Any(), babysitterID, &queries.Cursor{After: "broken"}, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?cursor=broken", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/babysitters/nope/reviews", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
