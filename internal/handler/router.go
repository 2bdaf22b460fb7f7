package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"renthub/internal/handler/api"
	"renthub/internal/handler/middleware"
	"renthub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Item        *api.ItemHandler
	Reservation *api.ReservationHandler
	Review      *api.ReviewHandler
	Dispute     *api.DisputeHandler
	Payment     *api.PaymentHandler
	Maintenance *api.MaintenanceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, rdb)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.NewRateLimiter(cfg.RateLimit, rdb)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.GetProfile},
				{Method: http.MethodPut, Path: "/me", Handler: h.Auth.UpdateProfile},
			})
		}

		items := apiGroup.Group("/items")
		{
			addRoutes(items, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Item.ListActive},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Item.GetDetail},
				{Method: http.MethodGet, Path: "/:id/blocked", Handler: h.Reservation.BlockedRanges},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListForItem},
			})

			owned := items.Group("")
			owned.Use(authMiddleware.RequireAuth(), rateLimit)
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Item.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Item.Update},
				{Method: http.MethodPatch, Path: "/:id/active", Handler: h.Item.SetActive},
				{Method: http.MethodPost, Path: "/:id/images", Handler: h.Item.AddImages},
				{Method: http.MethodGet, Path: "/:id/can-review", Handler: h.Review.CanReview},
			})
		}

		my := apiGroup.Group("/my")
		my.Use(authMiddleware.RequireAuth())
		{
			addRoutes(my, []route{
				{Method: http.MethodGet, Path: "/items", Handler: h.Item.ListMine},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Reservation.ListForOwner},
				{Method: http.MethodGet, Path: "/disputes", Handler: h.Dispute.ListMine},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			writes := reservations.Group("")
			writes.Use(rateLimit)
			addRoutes(writes, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Reservation.Confirm},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.Reservation.CancelByOwner},
			})
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetByID},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth(), rateLimit)
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.Create},
			})
		}

		disputes := apiGroup.Group("/disputes")
		disputes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(disputes, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Dispute.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Dispute.GetByID},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: h.Dispute.Advance},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				// Webhook authenticates by signature, not by JWT.
				{Method: http.MethodPost, Path: "/webhook", Handler: h.Payment.Webhook},
			})
			checkout := payments.Group("")
			checkout.Use(authMiddleware.RequireAuth())
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Payment.Checkout},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListAll},
				{Method: http.MethodPost, Path: "/reservations/:id/revert-payment", Handler: h.Reservation.RevertPayment},
				{Method: http.MethodGet, Path: "/items", Handler: h.Item.ListAll},
				{Method: http.MethodGet, Path: "/disputes", Handler: h.Dispute.ListAll},
			})
		}

		maintenance := apiGroup.Group("/maintenance")
		maintenance.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(maintenance, []route{
				{Method: http.MethodPost, Path: "/expire-holds", Handler: h.Maintenance.ExpireHolds},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
