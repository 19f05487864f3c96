package routes

import (
	"BeerExpiryTracker/internal/api/handlers"
	"BeerExpiryTracker/internal/middleware"
	"BeerExpiryTracker/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	UserHandler handlers.UserHandler
	BeerHandler handlers.BeerHandler
	Middleware  middleware.Middleware
	JWTService  jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Users()
	c.Beers()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
	}
}

func (c *Config) Users() {
	users := c.App.Group("/api/users", c.Middleware.AuthMiddleware(c.JWTService))
	{
		users.Get("/profile", c.UserHandler.Me)
		users.Patch("/device-token", c.UserHandler.UpdateDeviceToken)
	}
}

func (c *Config) Beers() {
	beers := c.App.Group("/api/beers", c.Middleware.AuthMiddleware(c.JWTService))

	// fixed paths before the :id routes
	beers.Get("/search", c.BeerHandler.SearchBeers)
	beers.Get("/upcoming", c.BeerHandler.GetUpcomingBeers)

	stats := beers.Group("/stats")
	stats.Get("/timeline", c.BeerHandler.GetExpiryTimelineStats)
	stats.Get("/types", c.BeerHandler.GetTypeDistributionStats)
	stats.Get("/brands", c.BeerHandler.GetBrandDistributionStats)
	stats.Get("/summary", c.BeerHandler.GetStatsSummary)

	beers.Post("", c.BeerHandler.CreateBeer)
	beers.Get("", c.BeerHandler.GetBeers)
	beers.Get("/:id", c.BeerHandler.GetBeerDetails)
	beers.Put("/:id", c.BeerHandler.UpdateBeer)
	beers.Delete("/:id", c.BeerHandler.DeleteBeer)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
