package database

import (
	"database/sql"

	"github.com/mepraz/bluebells/app/models"
)

// GetSettings returns the school settings row, creating an empty one on
// first read.
func GetSettings(db *sql.DB) (*models.SchoolSettings, error) {
	settings := &models.SchoolSettings{}
	query := `SELECT school_name, school_logo_url, school_address, school_phone, updated_at
	          FROM school_settings WHERE id = 1`
	err := db.QueryRow(query).Scan(
		&settings.SchoolName, &settings.SchoolLogoURL,
		&settings.SchoolAddress, &settings.SchoolPhone,
		&settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		if _, err := db.Exec("INSERT INTO school_settings (id) VALUES (1) ON CONFLICT DO NOTHING"); err != nil {
			return nil, err
		}
		return GetSettings(db)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettings replaces the school settings.
func UpdateSettings(db *sql.DB, settings *models.SchoolSettings) error {
	query := `INSERT INTO school_settings (id, school_name, school_logo_url, school_address, school_phone, updated_at)
	          VALUES (1, $1, $2, $3, $4, NOW())
	          ON CONFLICT (id)
	          DO UPDATE SET school_name = EXCLUDED.school_name,
	                        school_logo_url = EXCLUDED.school_logo_url,
	                        school_address = EXCLUDED.school_address,
	                        school_phone = EXCLUDED.school_phone,
	                        updated_at = NOW()`
	_, err := db.Exec(query,
		settings.SchoolName, settings.SchoolLogoURL,
		settings.SchoolAddress, settings.SchoolPhone,
	)
	return err
}
