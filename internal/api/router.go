package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/angelb-studio/studio-api/internal/api/handler"
	"github.com/angelb-studio/studio-api/internal/api/middleware"
	"github.com/angelb-studio/studio-api/internal/core/domain"
	"github.com/angelb-studio/studio-api/internal/core/service"
	mongodb "github.com/angelb-studio/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/angelb-studio/studio-api/internal/infrastructure/db/redis"
	"github.com/angelb-studio/studio-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("studio"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	artworkRepo := mongodb.NewArtworkRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	sectionRepo := mongodb.NewSectionRepository(db)
	wellnessRepo := mongodb.NewWellnessRepository(db)
	cache := redisdb.NewCache(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	artworkService := service.NewArtworkService(artworkRepo, userRepo, cache, log)
	postService := service.NewPostService(postRepo, userRepo, log)
	sectionService := service.NewSectionService(sectionRepo, artworkRepo, postRepo, userRepo, log)
	wellnessService := service.NewWellnessService(wellnessRepo, userRepo, log)
	userService := service.NewUserService(userRepo, artworkRepo, postRepo, wellnessRepo, sectionRepo, log)
	dashboardService := service.NewDashboardService(userRepo, artworkRepo, postRepo, cache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	artworkHandler := handler.NewArtworkHandler(artworkService)
	postHandler := handler.NewPostHandler(postService)
	sectionHandler := handler.NewSectionHandler(sectionService)
	userHandler := handler.NewUserHandler(userService)
	wellnessHandler := handler.NewWellnessHandler(wellnessService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Health probes and operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)

	// --- Public reads ---
	v1.GET("/artworks", artworkHandler.List)
	v1.GET("/artworks/featured", artworkHandler.ListFeatured)
	v1.GET("/artworks/:id", artworkHandler.Get)
	v1.GET("/posts", postHandler.List)
	v1.GET("/posts/latest", postHandler.ListLatest)
	v1.GET("/posts/:id", postHandler.Get)
	v1.GET("/artists", userHandler.ListArtists)
	v1.GET("/artists/:id", userHandler.ArtistProfile)
	v1.GET("/sections", sectionHandler.List)
	v1.GET("/sections/:slugOrID", sectionHandler.Profile)

	// --- Authenticated (any valid role) ---
	authed := v1.Group("", authMiddleware)
	authed.POST("/artworks", artworkHandler.Create)
	authed.PUT("/artworks/:id", artworkHandler.Update)
	authed.DELETE("/artworks/:id", artworkHandler.Delete)
	authed.POST("/posts", postHandler.Create)
	authed.PUT("/posts/:id", postHandler.Update)
	authed.DELETE("/posts/:id", postHandler.Delete)
	authed.GET("/me/artworks", artworkHandler.ListOwn)
	authed.GET("/me/posts", postHandler.ListOwn)
	authed.GET("/wellness", wellnessHandler.ListOwn)
	authed.POST("/wellness", wellnessHandler.Create)
	authed.PUT("/wellness/:id", wellnessHandler.Update)
	authed.DELETE("/wellness/:id", wellnessHandler.Delete)

	// --- Admin ---
	admin := v1.Group("/admin", authMiddleware, middleware.RBAC(string(domain.RoleAdmin)))
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.GET("/users/:id", userHandler.Get)
	admin.PUT("/users/:id", userHandler.Update)
	admin.PUT("/users/:id/role", userHandler.ChangeRole)
	admin.DELETE("/users/:id", userHandler.Delete)
	admin.PUT("/artworks/:id", artworkHandler.AdminUpdate)
	admin.DELETE("/artworks/:id", artworkHandler.AdminDelete)
	admin.PUT("/posts/:id", postHandler.AdminUpdate)
	admin.DELETE("/posts/:id", postHandler.AdminDelete)
	admin.POST("/sections", sectionHandler.Create)
	admin.PUT("/sections/:id", sectionHandler.Update)
	admin.DELETE("/sections/:id", sectionHandler.Delete)
	admin.POST("/sections/:id/members", sectionHandler.AddMember)
	admin.DELETE("/sections/:id/members/:userID", sectionHandler.RemoveMember)
	admin.GET("/wellness", wellnessHandler.AdminListAll)
	admin.GET("/stats", dashboardHandler.Stats)
	admin.GET("/content", dashboardHandler.AllContent)

	return e
}
