package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"backend/configs"
	"backend/routes"
	"backend/ws"
)

func main() {
	cfg := configs.LoadConfig()

	if err := configs.ConnectDB(cfg.DBSource); err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	if err := configs.SetupDatabase(); err != nil {
		log.Fatal("failed to migrate database: ", err)
	}
	if err := configs.SeedDatabase(cfg); err != nil {
		log.Fatal("failed to seed database: ", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg, hub)

	log.Println("listening on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
