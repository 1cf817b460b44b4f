package main

import (
	"prepcourse/config"
	"prepcourse/database"
	"prepcourse/routers"
	"prepcourse/utils"

	"github.com/charmbracelet/log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	scheduler, err := utils.StartIntegrityScheduler(config.AppConfig.IntegrityCron, database.Database.Services)
	if err != nil {
		log.Fatal("Failed to start integrity scheduler", "err", err)
	}
	if scheduler != nil {
		defer scheduler.Stop()
	}

	app := routers.NewApp()

	log.Info("Server is running", "port", config.AppConfig.Port)
	if err := app.Listen(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Server stopped", "err", err)
	}
}
