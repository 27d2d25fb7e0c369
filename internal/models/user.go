package models

import "time"

type User struct {
	ID           string     `json:"id" db:"user_id"`
	Email        string     `json:"email" db:"email"`
	Name         string     `json:"name" db:"name"`
	Password     string     `json:"-" db:"password"`
	Role         string     `json:"role" db:"role"` // "customer" ou "admin"
	Provider     string     `json:"provider" db:"provider"`
	SkinType     string     `json:"skin_type" db:"skin_type"`
	SkinConcerns []string   `json:"skin_concerns" db:"skin_concerns"`
	CreatedAt    *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at" db:"updated_at"`
}
