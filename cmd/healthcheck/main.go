// Container healthcheck binary: connects with the server's configuration,
// runs the health check, prints the result, and exits non-zero when
// unhealthy.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/socialsync/socialdb/internal/config"
	"github.com/socialsync/socialdb/internal/database"
	"github.com/socialsync/socialdb/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	result := services.HealthCheck(cfg, db)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
