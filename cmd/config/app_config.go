package config

import (
	"BeerExpiryTracker/internal/api/handlers"
	"BeerExpiryTracker/internal/api/routes"
	"BeerExpiryTracker/internal/middleware"
	"BeerExpiryTracker/internal/utils"
	"BeerExpiryTracker/internal/utils/mailing"
	"BeerExpiryTracker/internal/utils/storage"
	"BeerExpiryTracker/pkg/beer"
	"BeerExpiryTracker/pkg/jwt"
	"BeerExpiryTracker/pkg/notification"
	"BeerExpiryTracker/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, *notification.Scheduler, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailSender := mailing.NewSMTPSender()

	// Repository
	userRepository := user.NewUserRepository(db)
	beerRepository := beer.NewBeerRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	beerService := beer.NewBeerService(beerRepository, userRepository, s3)

	pushEnabled := utils.GetConfig("PUSH_ENABLED") == "true"
	pushSender := notification.NewFCMSender(utils.GetConfig("PUSH_API_KEY"))
	notificationService := notification.NewNotificationService(beerRepository, pushSender, mailSender, pushEnabled)
	scheduler, err := notification.NewScheduler(notificationService, utils.GetConfig("REMINDER_CRON"))
	if err != nil {
		return nil, nil, err
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	beerHandler := handlers.NewBeerHandler(beerService, validator)

	// routes
	routesConfig := routes.Config{
		App:         app,
		UserHandler: userHandler,
		BeerHandler: beerHandler,
		Middleware:  middlewares,
		JWTService:  jwtService,
	}
	routesConfig.Setup()
	return app, scheduler, nil
}
