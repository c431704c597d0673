package main

import (
	_ "klarna_checkout/docs"
	"klarna_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Klarna Checkout Service API
// @version         1.0
// @description     Cart-to-Klarna checkout order synchronization and order confirmation, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
