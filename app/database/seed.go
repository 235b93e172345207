package database

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// SeedDefaultUser creates the default admin account when the users table is
// empty, so a fresh install can log in at all.
func SeedDefaultUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE deleted_at IS NULL").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("No users found. Seeding default admin user...")

	username := "bluebell"
	password := "bluebell123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(
		"INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'admin')",
		username, string(hash),
	)
	if err != nil {
		return err
	}

	log.Printf("Default user '%s' with password '%s' created.", username, password)
	log.Println("Please change this password after your first login.")
	return nil
}
