//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coasters/internal/handler/api"
	"coasters/internal/usecase/queries"
	"coasters/tests/common/helper"
	queriesmock "coasters/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type MenuHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockMenuQueries
	handler     *api.MenuHandler
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.handler = api.NewMenuHandler(s.mockQueries)

	s.router.GET("/menu", s.handler.List)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: returns 200 OK with the catalog", func() {
		items := []queries.MenuItemView{
			{ID: "1", Name: "Cappuccino", Price: 100},
			{ID: "2", Name: "Latte", Price: 120},
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(items, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil, "")

		var response []queries.MenuItemView
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Cappuccino", response[0].Name)
	})

	s.Run("error: returns 500 on a query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errors.New("cache poisoned")).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
