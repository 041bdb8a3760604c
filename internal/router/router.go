package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Boldmaa4421/raffle-app/internal/config"
	"github.com/Boldmaa4421/raffle-app/internal/handler"
	"github.com/Boldmaa4421/raffle-app/internal/middleware"
	"github.com/Boldmaa4421/raffle-app/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	raffleH *handler.RaffleHandler,
	importH *handler.ImportHandler,
	lookupH *handler.LookupHandler,
	purchaseH *handler.PurchaseHandler,
	uploadH *handler.UploadHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)

	// Public raffle routes
	raffles := v1.Group("/raffles")
	raffles.GET("", raffleH.List)
	raffles.GET("/:id", raffleH.GetByID)
	raffles.GET("/:id/winners", raffleH.Winners)
	raffles.GET("/:id/lookup", lookupH.ByPhone)

	// Admin routes - require valid JWT
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))

	admin.POST("/raffles", raffleH.Create)
	admin.PUT("/raffles/:id", raffleH.Update)
	admin.DELETE("/raffles/:id", raffleH.Delete)
	admin.POST("/raffles/:id/reset", raffleH.Reset)
	admin.GET("/raffles/:id/stats", raffleH.Stats)
	admin.POST("/raffles/:id/winner", raffleH.AnnounceWinner)
	admin.GET("/raffles/:id/export", raffleH.ExportCodes)
	admin.POST("/raffles/:id/purchases", purchaseH.CreateManual)

	admin.POST("/import", importH.ImportRows)
	admin.POST("/import/file", importH.ImportFile)

	admin.POST("/uploads/image", uploadH.UploadImage)

	return r
}
