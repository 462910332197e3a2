package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/modaboutique/storefront/internal/stubapi"
	"github.com/modaboutique/storefront/pkg/global"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	server := stubapi.NewServer()
	router := stubapi.NewRouter(server)

	port := global.GetEnvOrDefault("PORT", "8080")
	log.Printf("Stub backend is running on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run stub backend: %v", err)
	}
}
