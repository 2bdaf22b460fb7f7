//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"renthub/internal/handler/api"
	"renthub/internal/pkg/config"
	"renthub/internal/pkg/errs"
	"renthub/internal/usecase/commands"
	"renthub/tests/common/httptest"
	commandsmock "renthub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands, config.NewTestConfig().Payment)

	s.router.POST("/payments/webhook", s.handler.Webhook)
	s.router.POST("/payments/checkout", s.handler.Checkout)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/payments/webhook"
	body := []byte(`{"type":"checkout.session.completed","data":{"object":{"metadata":{"reservation_id":"7"}}}}`)
	headers := map[string]string{"X-Payment-Signature": "sig"}

	s.Run("success: passes raw body and signature header through", func() {
		s.mockCommands.EXPECT().
			HandleWebhook(gomock.Any(), body, "sig").
			Return(nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)

		var response struct {
			Received bool `json:"received"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("error: command failures map to distinct statuses", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "signature mismatch", err: commands.ErrBadWebhookSignature, expectCode: http.StatusBadRequest},
			{name: "malformed payload", err: commands.ErrBadWebhookPayload, expectCode: http.StatusBadRequest},
			{name: "unknown reservation", err: errs.ErrReservationNotFound, expectCode: http.StatusNotFound},
			{name: "storage failure", err: errs.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					HandleWebhook(gomock.Any(), body, "sig").
					Return(tc.err).Times(1)
				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body, headers)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	s.Run("checkout is a disabled stub returning 501", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payments/checkout", nil, "")
		s.Equal(http.StatusNotImplemented, rec.Code)
		s.Contains(rec.Body.String(), "payments_not_configured")
	})
}
