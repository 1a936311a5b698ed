package main

import (
	"log"

	_ "cardboard/docs"
	"cardboard/internal/config"
	"cardboard/internal/server"
)

// @title           Cardboard API
// @version         1.0
// @description     API for a shared kanban board: ordered columns, cards, and comments.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
