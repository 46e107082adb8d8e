package main

import (
	_ "github.com/foodbridge/backend/docs"
	"github.com/foodbridge/backend/internal/bootstrap"
)

// @title FoodBridge API
// @version 1.0.0
// @description Backend for matching perishable-goods donations to nearby volunteers

// @host api.foodbridge.example.com
// @BasePath /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	bootstrap.Run()
}
