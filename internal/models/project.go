package models

import (
	"time"
)

type Highlight struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type ProjectLinks struct {
	GitHub []string `json:"github,omitempty"`
	Demo   string   `json:"demo,omitempty"`
}

// Project uses a slug as its primary key so public URLs stay stable when
// content is re-imported.
type Project struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	Title        string        `json:"title" gorm:"not null"`
	Date         string        `json:"date" gorm:"not null"`
	Cover        string        `json:"cover,omitempty"`
	Role         string        `json:"role"`
	Timeline     string        `json:"timeline"`
	Summary      string        `json:"summary"`
	Description  string        `json:"description"`
	Problem      string        `json:"problem,omitempty"`
	Solution     string        `json:"solution,omitempty"`
	Highlights   []Highlight   `json:"highlights" gorm:"serializer:json"`
	Technologies []string      `json:"technologies" gorm:"serializer:json"`
	Screenshots  []string      `json:"screenshots,omitempty" gorm:"serializer:json"`
	Links        *ProjectLinks `json:"links,omitempty" gorm:"serializer:json"`
	Development  bool          `json:"development" gorm:"default:false"`
	Group        string        `json:"group,omitempty" gorm:"column:group_name"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ProjectWithStats is a Project plus its rating aggregate, computed with a
// LEFT JOIN at read time.
type ProjectWithStats struct {
	Project
	TotalRatings  int64   `json:"total_ratings"`
	AverageRating float64 `json:"average_rating"`
}

// Request structs for API
type CreateProjectRequest struct {
	ID           string        `json:"id" binding:"required,min=1,max=100"`
	Title        string        `json:"title" binding:"required,min=1,max=255"`
	Date         string        `json:"date" binding:"required"`
	Cover        string        `json:"cover"`
	Role         string        `json:"role"`
	Timeline     string        `json:"timeline"`
	Summary      string        `json:"summary"`
	Description  string        `json:"description"`
	Problem      string        `json:"problem"`
	Solution     string        `json:"solution"`
	Highlights   []Highlight   `json:"highlights"`
	Technologies []string      `json:"technologies"`
	Screenshots  []string      `json:"screenshots"`
	Links        *ProjectLinks `json:"links"`
	Development  bool          `json:"development"`
	Group        string        `json:"group"`
}

type UpdateProjectRequest struct {
	Title        *string        `json:"title,omitempty"`
	Date         *string        `json:"date,omitempty"`
	Cover        *string        `json:"cover,omitempty"`
	Role         *string        `json:"role,omitempty"`
	Timeline     *string        `json:"timeline,omitempty"`
	Summary      *string        `json:"summary,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Problem      *string        `json:"problem,omitempty"`
	Solution     *string        `json:"solution,omitempty"`
	Highlights   *[]Highlight   `json:"highlights,omitempty"`
	Technologies *[]string      `json:"technologies,omitempty"`
	Screenshots  *[]string      `json:"screenshots,omitempty"`
	Links        *ProjectLinks  `json:"links,omitempty"`
	Development  *bool          `json:"development,omitempty"`
	Group        *string        `json:"group,omitempty"`
}
