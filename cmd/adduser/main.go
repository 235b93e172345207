package main

import (
	"flag"
	"log"

	"github.com/mepraz/bluebells/app/config"
	"github.com/mepraz/bluebells/app/database"
	"github.com/mepraz/bluebells/app/models"
	"github.com/mepraz/bluebells/app/routes/auth"
)

func main() {
	username := flag.String("username", "", "username for the new user")
	password := flag.String("password", "", "password for the new user")
	role := flag.String("role", "admin", "role: admin, accountant or exam")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Usage: adduser -username <name> -password <password> [-role admin|accountant|exam]")
	}

	userRole := models.UserRole(*role)
	switch userRole {
	case models.RoleAdmin, models.RoleAccountant, models.RoleExam:
	default:
		log.Fatalf("Unknown role %q", *role)
	}

	cfg := config.Load()
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	user := &models.User{
		Username:     *username,
		PasswordHash: hash,
		Role:         userRole,
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	log.Printf("User '%s' created with role '%s'", user.Username, user.Role)
}
