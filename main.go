package main

import (
	"Cookbook-Backend/cmd/config"
	migration "Cookbook-Backend/cmd/database/migrate"
	"Cookbook-Backend/internal/utils"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
