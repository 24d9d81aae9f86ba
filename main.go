package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/kelseymakesthings/auto-outfit/app"
)

func main() {
	// Load .env file in development (ignores error if file doesn't exist)
	// In production, variables should be set directly
	if os.Getenv("ENV") != "production" {
		// Use Overload to ensure .env values override system environment variables
		if err := godotenv.Overload(".env"); err == nil {
			log.Printf("Successfully loaded environment variables from .env (overriding system variables)")
		}
	}

	if err := app.Execute(); err != nil {
		log.Fatal(err)
	}
}
