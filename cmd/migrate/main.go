package main

import (
	"log"

	"github.com/mepraz/bluebells/app/config"
	"github.com/mepraz/bluebells/app/database"
)

func main() {
	log.Println("Running standalone migrations...")

	cfg := config.Load()
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed: ", err)
	}

	if err := database.SeedDefaultUser(db); err != nil {
		log.Fatal("Failed to seed default user: ", err)
	}

	log.Println("Migrations completed successfully!")
}
