package database

import (
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

// GetUserByUsername returns the active user with the given username, or
// sql.ErrNoRows.
func GetUserByUsername(db *sql.DB, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, created_at, updated_at
	          FROM users WHERE username = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the active user with the given id, or sql.ErrNoRows.
func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, role, created_at, updated_at
	          FROM users WHERE id = $1 AND deleted_at IS NULL`
	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user and fills in the generated id.
func CreateUser(db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (username, password_hash, role)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	return db.QueryRow(query, user.Username, user.PasswordHash, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(db *sql.DB, userID, passwordHash string) error {
	_, err := db.Exec(
		"UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2",
		passwordHash, userID,
	)
	return err
}
