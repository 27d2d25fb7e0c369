package models

import (
	"time"

	"github.com/gocql/gocql"
)

type Ingredient struct {
	ID          gocql.UUID `json:"id" db:"ingredient_id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Benefits    []string   `json:"benefits" db:"benefits"`
	SuitableFor []string   `json:"suitable_for" db:"suitable_for"` // types de peau
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}
