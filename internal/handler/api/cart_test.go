//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coasters/internal/handler/api"
	reqdto "coasters/internal/handler/dto/request"
	resdto "coasters/internal/handler/dto/response"
	"coasters/internal/usecase/commands"
	"coasters/internal/usecase/queries"
	"coasters/tests/common/helper"
	"coasters/tests/common/testutil"
	commandsmock "coasters/tests/mock/commands"
	queriesmock "coasters/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionID = "test-session"

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockCheckout, s.mockQueries)

	// Mock middleware behavior: every request carries a session, and an
	// Authorization header stands in for a signed-in user.
	s.router.Use(func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", uuid.New())
		}
	})

	s.router.GET("/cart", s.handler.Get)
	s.router.DELETE("/cart", s.handler.Clear)
	s.router.POST("/cart/items", s.handler.AddItem)
	s.router.PATCH("/cart/items/:id", s.handler.UpdateQuantity)
	s.router.DELETE("/cart/items/:id", s.handler.RemoveItem)
	s.router.POST("/cart/coupon", s.handler.ApplyCoupon)
	s.router.DELETE("/cart/coupon", s.handler.RemoveCoupon)
	s.router.POST("/cart/coupons/redeem", s.handler.RedeemReward)
	s.router.POST("/cart/checkout", s.handler.Checkout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

func emptyCartView() *queries.CartView {
	return &queries.CartView{
		Items:         []queries.CartItemView{},
		RewardCoupons: []queries.RewardCouponView{},
	}
}

func (s *CartHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with the session cart", func() {
		view := emptyCartView()
		view.Subtotal = 100
		view.Tax = 5
		view.Total = 105
		s.mockQueries.EXPECT().Get(gomock.Any(), testSessionID).Return(view, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")

		var response resdto.CartResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(105.0, response.Cart.Total)
	})

	s.Run("error: returns 500 when the store fails", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), testSessionID).
			Return(nil, errors.New("store failure")).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *CartHandlerTestSuite) TestAddItem() {
	url := "/cart/items"
	reqBody := reqdto.AddCartItemRequest{ID: "1", Name: "Cappuccino", Price: 100, Quantity: 1}

	s.Run("success: returns 200 OK with the updated cart and notice", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), testSessionID, reqBody).
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Added Cappuccino to cart"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CartResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Added Cappuccino to cart", response.Notice)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: id (required)", mutate: testutil.Field("id", nil)},
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: quantity (required)", mutate: testutil.Field("quantity", nil)},
			{name: "quantity boundary invalid (0)", mutate: testutil.Field("quantity", 0)},
			{name: "negative price", mutate: testutil.Field("price", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid cart item",
				commandsError:  commands.ErrInvalidCartItem,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid cart item",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("store failure"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddItem(gomock.Any(), testSessionID, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestUpdateQuantity() {
	url := "/cart/items/1"

	s.Run("success: returns 200 OK with the updated cart", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), testSessionID, "1", 3).
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Updated quantity of Cappuccino"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 3}, "")
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: explicit zero removes the item", func() {
		s.mockCommands.EXPECT().UpdateQuantity(gomock.Any(), testSessionID, "1", 0).
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Item removed from cart"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"quantity": 0}, "")

		var response resdto.CartResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Item removed from cart", response.Notice)
	})

	s.Run("error: 400 Bad Request when quantity is missing", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *CartHandlerTestSuite) TestRemoveItem() {
	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), testSessionID, "1").
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Item removed from cart"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/items/1", nil, "")
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CartHandlerTestSuite) TestClear() {
	s.Run("success: returns 200 OK with the emptied cart", func() {
		s.mockCommands.EXPECT().Clear(gomock.Any(), testSessionID).
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Cart cleared"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart", nil, "")
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *CartHandlerTestSuite) TestApplyCoupon() {
	url := "/cart/coupon"
	reqBody := reqdto.ApplyCouponRequest{Code: "FLAT50"}

	s.Run("success: returns 200 OK with the discounted cart", func() {
		view := emptyCartView()
		view.Discount = 50
		s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), testSessionID, "FLAT50").
			Return(&commands.CartResult{Cart: view, Notice: "Coupon applied! You saved ₹50"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CartResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(50.0, response.Cart.Discount)
	})

	s.Run("error: 400 Bad Request when code is missing", func() {
		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid coupon",
				commandsError:  commands.ErrInvalidCoupon,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid coupon code",
			},
			{
				name:           "no eligible item",
				commandsError:  commands.ErrNoEligibleItem,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "This coupon can only be applied to coffee items",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ApplyCoupon(gomock.Any(), testSessionID, "FLAT50").
					Return(nil, tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *CartHandlerTestSuite) TestRedeemReward() {
	url := "/cart/coupons/redeem"

	s.Run("success: returns 200 OK with the reward applied", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), testSessionID).
			Return(&commands.CartResult{Cart: emptyCartView(), Notice: "Free coffee coupon applied! You saved ₹100"}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		helper.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request when no reward coupons are held", func() {
		s.mockCommands.EXPECT().RedeemReward(gomock.Any(), testSessionID).
			Return(nil, commands.ErrNoRewardCoupons).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		helper.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "No reward coupons available")
	})
}

func (s *CartHandlerTestSuite) TestCheckout() {
	url := "/cart/checkout"

	s.Run("success: returns 201 Created with the order summary", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), testSessionID, (*uuid.UUID)(nil)).
			Return(&commands.CheckoutResult{
				OrderID:     42,
				OrderNumber: "CST-abc123",
				Amount:      105,
				Notice:      "Order placed! Your order number is CST-abc123",
			}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")

		var response resdto.CheckoutResponse
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("CST-abc123", response.OrderNumber)
		s.Equal(int64(42), response.OrderID)
	})

	s.Run("success: forwards the signed-in user", func() {
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), testSessionID, gomock.Not(gomock.Nil())).
			Return(&commands.CheckoutResult{OrderID: 43, OrderNumber: "CST-def456", Amount: 105}, nil).Times(1)

		rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		helper.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "empty cart",
				commandsError:  commands.ErrCartEmpty,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Cart is empty",
			},
			{
				name:           "invalid product id",
				commandsError:  commands.ErrInvalidProductID,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Cart contains an item that cannot be ordered",
			},
			{
				name:           "upstream failure",
				commandsError:  commands.ErrUpstreamFailure,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Order could not be placed, please try again",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), testSessionID, (*uuid.UUID)(nil)).
					Return(nil, tc.commandsError).Times(1)

				rec := helper.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
				helper.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
