package models

import "time"

// DefaultProfileID keys the single device-wide reminder preference row.
const DefaultProfileID = "default"

// ReminderPreference is the user-settable reminder configuration.
type ReminderPreference struct {
	ProfileID   string    `db:"profile_id" json:"-"`
	Enabled     bool      `db:"enabled" json:"enabled"`
	LeadMinutes int       `db:"lead_minutes" json:"leadMinutes"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
