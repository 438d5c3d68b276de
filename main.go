package main

import (
	"log"

	"github.com/Bibek1604/epsalae-storefront/config"
	"github.com/Bibek1604/epsalae-storefront/controllers"
	"github.com/Bibek1604/epsalae-storefront/routes"
	"github.com/Bibek1604/epsalae-storefront/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Open the local storage file (cart, session, brands)
	if err := config.InitStorage(); err != nil {
		utils.LogError("Failed to open local storage: %v", err)
		log.Fatal("Failed to open local storage:", err)
	}

	// Build the application graph
	app := controllers.NewApp(cfg, config.Storage)

	// Set up router
	router := routes.SetupRouter(app)

	// Add middleware
	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	utils.LogInfo("%s starting on port %s, backend %s", cfg.AppName, cfg.Port, cfg.APIBaseURL)
	// Start server
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
