package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guarupark-checkout/internal/handler/api"
	resdto "guarupark-checkout/internal/handler/dto/response"
	"guarupark-checkout/internal/handler/middleware"
	"guarupark-checkout/internal/pkg/config"
)

const maxBodyBytes = 64 << 10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Payment     *api.PaymentHandler
	Webhook     *api.WebhookHandler
	Reservation *api.ReservationHandler
	Checkout    *api.CheckoutHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.NoRoute(middleware.NotFound())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limitBody := []gin.HandlerFunc{middleware.LimitBody(maxBodyBytes)}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/health", Handler: healthCheck},
			{Method: http.MethodPost, Path: "/payments/:method", Handler: h.Payment.Pay, Mw: limitBody},
			{Method: http.MethodPost, Path: "/webhooks/payment", Handler: h.Webhook.PaymentStatus, Mw: limitBody},
		})

		reservations := apiGroup.Group("/reservations")
		addRoutes(reservations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
		})

		sessions := apiGroup.Group("/checkout/sessions")
		addRoutes(sessions, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Checkout.Start},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Checkout.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Checkout.Remove},
			{Method: http.MethodPatch, Path: "/:id/fields", Handler: h.Checkout.UpdateFields},
			{Method: http.MethodPut, Path: "/:id/method", Handler: h.Checkout.SelectMethod},
			{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Checkout.Submit},
			{Method: http.MethodPost, Path: "/:id/confirm", Handler: h.Checkout.Confirm},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Checkout.Cancel},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} resdto.HealthResponse
// @Router /api/health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.HealthResponse{
		Status:  "ok",
		Message: "GuaruPark Checkout Server",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, chain...)
	}
}
