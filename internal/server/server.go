package server

import (
	"time"

	"backend-wayfarer/internal/auth"
	"backend-wayfarer/internal/config"
	"backend-wayfarer/internal/poi"
	"backend-wayfarer/internal/preference"
	"backend-wayfarer/internal/route"
	"backend-wayfarer/internal/vehicle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

// routeCache prefers redis when a client is configured so the last route
// survives restarts; otherwise routes are held in process memory.
func routeCache(s *Server) route.Cache {
	if s.Redis != nil {
		ttl := time.Duration(s.Cfg.RouteCacheTTLSec) * time.Second
		return route.NewRedisCache(s.Redis, ttl)
	}
	return route.NewMemoryCache()
}

// routePlanner uses the external directions API when configured and falls
// back to straight-line estimation otherwise.
func routePlanner(s *Server) route.Planner {
	if s.Cfg.RoutingBaseURL != "" {
		return route.NewORSPlanner(s.Cfg.RoutingBaseURL, s.Cfg.RoutingAPIKey)
	}
	return route.NewHaversinePlanner()
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)

	authSvc := auth.NewService(s.Cfg.JWTSecret, s.DB)
	vehicleSvc := vehicle.NewService(s.DB)
	prefSvc := preference.NewService(s.DB)
	routeSvc := route.NewService(s.DB, authSvc, vehicleSvc, prefSvc,
		routePlanner(s), routeCache(s), s.Cfg.FuelPricePerLiter, s.Cfg.CaloriesPerKm)

	auth.RegisterRoutes(s.App.Group("/auth"), authSvc)
	poi.RegisterRoutes(s.App.Group("/pois"), poi.NewService(s.DB), jwtMiddleware)
	vehicle.RegisterRoutes(s.App.Group("/vehicles"), vehicleSvc, jwtMiddleware)
	preference.RegisterRoutes(s.App.Group("/preferences"), prefSvc, jwtMiddleware)
	route.RegisterRoutes(s.App.Group("/routes"), routeSvc, jwtMiddleware)
}
