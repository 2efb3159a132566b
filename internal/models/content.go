package models

import (
	"time"
)

type Skill struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Category  string    `json:"category"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Experience struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Company     string    `json:"company" gorm:"not null"`
	Position    string    `json:"position" gorm:"not null"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date,omitempty"`
	Description string    `json:"description"`
	Highlights  []string  `json:"highlights,omitempty" gorm:"serializer:json"`
	SortOrder   int       `json:"sort_order" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Credential struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null"`
	Issuer    string    `json:"issuer"`
	IssuedAt  string    `json:"issued_at"`
	URL       string    `json:"url,omitempty"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// FeatureFlag gates optional sections of the site. Flags are keyed by name
// and edited from the admin panel.
type FeatureFlag struct {
	Name        string    `json:"name" gorm:"primaryKey"`
	Enabled     bool      `json:"enabled" gorm:"default:false"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}
