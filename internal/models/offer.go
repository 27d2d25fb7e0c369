package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Offer struct {
	ID          gocql.UUID `json:"id" db:"offer_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Discount    int        `json:"discount" db:"discount"` // pourcentage
	ImageURL    string     `json:"image_url" db:"image_url"`
	Active      bool       `json:"active" db:"active"`
	StartDate   *time.Time `json:"start_date" db:"start_date"`
	EndDate     *time.Time `json:"end_date" db:"end_date"`
	ButtonText  string     `json:"button_text" db:"button_text"`
	ButtonLink  string     `json:"button_link" db:"button_link"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}

// IsCurrentlyActive vérifie que l'offre est active et dans sa fenêtre de validité
func (o Offer) IsCurrentlyActive(now time.Time) bool {
	if !o.Active {
		return false
	}
	if o.StartDate != nil && o.StartDate.After(now) {
		return false
	}
	if o.EndDate != nil && o.EndDate.Before(now) {
		return false
	}
	return true
}
