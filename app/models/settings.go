package models

import "time"

// SchoolSettings is the single-row school letterhead configuration printed
// on bills and marksheets.
type SchoolSettings struct {
	SchoolName    string    `json:"school_name"`
	SchoolLogoURL string    `json:"school_logo_url"`
	SchoolAddress string    `json:"school_address"`
	SchoolPhone   string    `json:"school_phone"`
	UpdatedAt     time.Time `json:"updated_at"`
}
