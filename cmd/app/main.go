package main

import (
	"BeerExpiryTracker/cmd/config"
	migration "BeerExpiryTracker/cmd/database/migrate"
	"BeerExpiryTracker/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, scheduler, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error setting up app: %v", err)
	}

	scheduler.Start()
	defer scheduler.Stop()

	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
