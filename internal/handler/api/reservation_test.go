//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"renthub/internal/handler/api"
	resdto "renthub/internal/handler/dto/response"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/internal/usecase/queries"
	"renthub/tests/common/httptest"
	"renthub/tests/common/testutil"
	commandsmock "renthub/tests/mock/commands"
	queriesmock "renthub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	renterID     uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.renterID = uuid.New()

	// Mock middleware behavior: the real auth middleware sets user_id from
	// the validated token.
	authed := func(c *gin.Context) {
		c.Set("user_id", s.renterID)
		c.Next()
	}
	s.router.POST("/reservations", authed, s.handler.Create)
	s.router.POST("/reservations/:id/cancel", authed, s.handler.Cancel)
	s.router.GET("/items/:id/blocked", s.handler.BlockedRanges)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"item_id":   int64(42),
		"date_from": "2026-09-10",
		"date_to":   "2026-09-12",
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: returns 201 Created with the reservation view", func() {
		created := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
		view := &queries.ReservationView{
			ID:            7,
			ItemID:        42,
			ItemTitle:     "Cargo bike",
			RenterID:      s.renterID,
			DateFrom:      time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			DateTo:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Status:        "pending",
			PaymentStatus: "unpaid",
			CreatedAt:     created,
		}
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.renterID, commands.CreateReservationInput{
				ItemID:   42,
				DateFrom: "2026-09-10",
				DateTo:   "2026-09-12",
			}).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(7), response.ID)
		s.Equal("2026-09-10", response.DateFrom)
		s.Equal("2026-09-12", response.DateTo)
		s.Equal("pending", response.Status)
		s.Equal("unpaid", response.PaymentStatus)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing item_id", mutate: testutil.Field("item_id", nil)},
			{name: "missing date_from", mutate: testutil.Field("date_from", nil)},
			{name: "date_to not a calendar date", mutate: testutil.Field("date_to", "2026-9-1")},
			{name: "date_from with time component", mutate: testutil.Field("date_from", "2026-09-10T00:00:00Z")},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				body := s.validBody()
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: command failures map to distinct statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown item", err: errs.ErrItemNotFound, expectCode: http.StatusNotFound},
			{name: "inactive item", err: errs.ErrItemInactive, expectCode: http.StatusUnprocessableEntity},
			{name: "overlapping dates", err: errs.ErrReservationConflict, expectCode: http.StatusConflict},
			{name: "range in the past", err: errs.ErrInvalidDateRange, expectCode: http.StatusBadRequest},
			{name: "booking own item", err: errs.ErrForbidden, expectCode: http.StatusForbidden},
			{name: "storage failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Create(gomock.Any(), s.renterID, gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancel() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().
			CancelByRenter(gomock.Any(), int64(7), s.renterID).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/7/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/abc/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: someone else's reservation returns 403", func() {
		s.mockCommands.EXPECT().
			CancelByRenter(gomock.Any(), int64(7), s.renterID).
			Return(errs.ErrForbidden).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/7/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

func (s *ReservationHandlerTestSuite) TestBlockedRanges() {
	s.Run("success: returns item id and blocked ranges", func() {
		blocked := []queries.DateRangeView{
			{From: "0000-01-01", To: "2026-08-28"},
			{From: "2026-09-10", To: "2026-09-12"},
		}
		s.mockQueries.EXPECT().
			BlockedRanges(gomock.Any(), int64(42)).
			Return(blocked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/items/42/blocked", nil, "")

		var response resdto.BlockedRangesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(42), response.ItemID)
		s.Equal(blocked, response.Blocked)
	})
}
