//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"paylane/internal/handler/api"
	resdto "paylane/internal/handler/dto/response"
	"paylane/internal/pkg/errs"
	"paylane/internal/usecase/commands"
	"paylane/tests/common/builder"
	"paylane/tests/common/httptest"
	"paylane/tests/common/testutil"
	commandsmock "paylane/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MerchantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMerchantCommands
	handler      *api.MerchantHandler
}

func (s *MerchantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMerchantCommands(s.mockCtrl)
	s.handler = api.NewMerchantHandler(s.mockCommands)

	s.router.POST("/merchants", s.handler.Register)
}

func (s *MerchantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMerchantHandlerSuite(t *testing.T) {
	suite.Run(t, new(MerchantHandlerTestSuite))
}

func (s *MerchantHandlerTestSuite) TestRegister() {
	url := "/merchants"

	reqBody := builder.NewMerchantBuilder().BuildRegisterRequestDTO()
	expectedResult := &commands.RegisterMerchantResult{
		MerchantID:    uuid.New(),
		APIKey:        testAPIKey,
		WalletAddress: reqBody.WalletAddress,
	}

	s.Run("success: returns 201 Created with issued API key", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.MerchantResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.MerchantID.String(), body.ID)
		s.Equal(testAPIKey, body.APIKey)
		s.Equal(reqBody.WalletAddress, body.WalletAddress)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: wallet_address (required)", mutate: testutil.Field("wallet_address", nil)},
			{name: "empty name", mutate: testutil.Field("name", "")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		s.Run("domain validation error", func() {
			s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
				Return(nil, errs.ErrValidation).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid merchant")
		})

		s.Run("internal server error", func() {
			s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
				Return(nil, errors.New("database error")).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Register merchant failed")
		})
	})
}
