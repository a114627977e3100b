package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-backend/internal/handler/api"
	"hotel-backend/internal/handler/middleware"
	"hotel-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Customer     *api.CustomerHandler
	Provisioning *api.ProvisioningHandler
	Reservation  *api.ReservationHandler
	Room         *api.RoomHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staff := authMiddleware.RequireStaff()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/customers/login", Handler: h.Auth.CustomerLogin},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// sign-up is public
		apiGroup.POST("/customers", h.Customer.Create)

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete},
				{Method: http.MethodGet, Path: "/:id/provisioning", Handler: h.Provisioning.Status},
				{Method: http.MethodPost, Path: "/:id/provisioning/resume", Handler: h.Provisioning.Resume, Mw: []gin.HandlerFunc{staff}},
			})
		}

		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.ListHotels},
				{Method: http.MethodGet, Path: "/:hotelId/categories", Handler: h.Room.ListCategories},
				{Method: http.MethodGet, Path: "/:hotelId/rooms", Handler: h.Room.ListByHotel},
				{Method: http.MethodPost, Path: "/:hotelId/rooms", Handler: h.Room.Create, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodGet, Path: "/:hotelId/customers", Handler: h.Customer.ListForHotel, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodGet, Path: "/:hotelId/customers/search", Handler: h.Customer.Search, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodGet, Path: "/:hotelId/reservations", Handler: h.Reservation.ListForHotel, Mw: []gin.HandlerFunc{staff}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{staff}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Room.Update, Mw: []gin.HandlerFunc{staff}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete, Mw: []gin.HandlerFunc{staff}},
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
