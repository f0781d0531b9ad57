package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	config := LoadConfig()

	if err := os.MkdirAll(config.Storage.Path, 0755); err != nil {
		log.Fatal("Failed to create storage directory:", err)
	}

	storage := NewStorage(config.Storage.Path)
	api := NewAPI(storage)

	router := gin.Default()
	api.RegisterRoutes(router)

	go printAccessQR(config.Server.Port)

	log.Printf("Upload server running at http://localhost:%s", config.Server.Port)
	log.Printf("Files will be saved to: %s", config.Storage.Path)
	if err := router.Run(":" + config.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
