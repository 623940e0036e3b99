package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coasters/internal/domain/user"
	"coasters/internal/handler/api"
	"coasters/internal/handler/middleware"
	"coasters/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth   *api.AuthHandler
	Menu   *api.MenuHandler
	Cart   *api.CartHandler
	Game   *api.GameHandler
	Order  *api.OrderHandler
	Coupon *api.CouponHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	session := middleware.EnsureSession(cfg.Cookie, cfg.Session)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/otp/request", Handler: handlers.Auth.RequestOTP},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: handlers.Auth.VerifyOTP},
				{Method: http.MethodPost, Path: "/refresh", Handler: handlers.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		apiGroup.GET("/menu", handlers.Menu.List)

		// Cart and game work for guests; auth is optional so checkout can
		// attach the order to an account when one is signed in.
		cart := apiGroup.Group("/cart")
		cart.Use(session, authMiddleware.OptionalAuth())
		{
			addRoutes(cart, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Cart.Get},
				{Method: http.MethodDelete, Path: "", Handler: handlers.Cart.Clear},
				{Method: http.MethodPost, Path: "/items", Handler: handlers.Cart.AddItem},
				{Method: http.MethodPatch, Path: "/items/:id", Handler: handlers.Cart.UpdateQuantity},
				{Method: http.MethodDelete, Path: "/items/:id", Handler: handlers.Cart.RemoveItem},
				{Method: http.MethodPost, Path: "/coupon", Handler: handlers.Cart.ApplyCoupon},
				{Method: http.MethodDelete, Path: "/coupon", Handler: handlers.Cart.RemoveCoupon},
				{Method: http.MethodGet, Path: "/coupons", Handler: handlers.Cart.ListRewardCoupons},
				{Method: http.MethodPost, Path: "/coupons/redeem", Handler: handlers.Cart.RedeemReward},
				{Method: http.MethodPost, Path: "/checkout", Handler: handlers.Cart.Checkout},
			})
		}

		game := apiGroup.Group("/game")
		game.Use(session)
		{
			addRoutes(game, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Game.Get},
				{Method: http.MethodGet, Path: "/items", Handler: handlers.Game.ListItems},
				{Method: http.MethodPost, Path: "/items/:id/toggle", Handler: handlers.Game.ToggleItem},
				{Method: http.MethodPost, Path: "/proceed", Handler: handlers.Game.Proceed},
				{Method: http.MethodPost, Path: "/back", Handler: handlers.Game.Back},
				{Method: http.MethodPost, Path: "/pay", Handler: handlers.Game.Pay},
				{Method: http.MethodPost, Path: "/pick", Handler: handlers.Game.Pick},
				{Method: http.MethodPost, Path: "/roll", Handler: handlers.Game.Roll},
				{Method: http.MethodPost, Path: "/advance", Handler: handlers.Game.Advance},
				{Method: http.MethodPost, Path: "/reset", Handler: handlers.Game.Reset},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Order.ListMyOrders},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleStaff))
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/grant", Handler: handlers.Coupon.GrantRewards},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
