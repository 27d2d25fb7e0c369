package models

import (
	"time"

	"github.com/gocql/gocql"
)

type BlogPost struct {
	ID          gocql.UUID `json:"id" db:"blog_id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Excerpt     string     `json:"excerpt" db:"excerpt"`
	Author      string     `json:"author" db:"author"`
	Published   bool       `json:"published" db:"published"`
	PublishDate string     `json:"publish_date" db:"publish_date"` // format AAAA-MM-JJ
	Tags        []string   `json:"tags" db:"tags"`
	CreatedAt   *time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at" db:"updated_at"`
}
