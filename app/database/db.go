package database

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
)

// Connect opens the Postgres connection and verifies it. The returned
// handle is owned by the caller; close it on shutdown.
func Connect(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	log.Println("Database connected successfully")
	return db, nil
}
