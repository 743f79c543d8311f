package models

import "time"

// Project represents a portfolio project entry.
type Project struct {
	ID           int64               `json:"id" gorm:"primaryKey"`
	Title        string              `json:"title" gorm:"not null"`
	Description  string              `json:"description" gorm:"type:text"`
	ImageURL     string              `json:"image_url"`
	ModelURL     string              `json:"model_url"`
	GithubURL    string              `json:"github_url"`
	DemoURL      string              `json:"demo_url"`
	Technologies []ProjectTechnology `json:"technologies" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Featured     bool                `json:"featured" gorm:"not null;default:false"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// TableName returns the database table name for the Project model.
func (Project) TableName() string {
	return "projects"
}

// ProjectTechnology is an ordered technology value owned by a project.
// Duplicates are allowed; Position preserves the author's ordering.
type ProjectTechnology struct {
	ID        int64  `json:"-" gorm:"primaryKey"`
	ProjectID int64  `json:"-" gorm:"index;not null"`
	Position  int    `json:"-" gorm:"not null"`
	Value     string `json:"value" gorm:"not null"`
}

// TableName returns the database table name for the ProjectTechnology model.
func (ProjectTechnology) TableName() string {
	return "project_technologies"
}

// TechnologyValues returns the plain technology strings in stored order.
func (p *Project) TechnologyValues() []string {
	values := make([]string, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		values = append(values, t.Value)
	}
	return values
}

// NewProjectTechnologies wraps plain strings into ordered rows.
func NewProjectTechnologies(values []string) []ProjectTechnology {
	techs := make([]ProjectTechnology, 0, len(values))
	for i, v := range values {
		techs = append(techs, ProjectTechnology{Position: i, Value: v})
	}
	return techs
}
