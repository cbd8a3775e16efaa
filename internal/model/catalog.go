package model

import "time"

// Project and Skill back the portfolio catalog. They are migrated with the rest of the
// schema but nothing writes to them yet.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:255;index" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	TechStack   string    `gorm:"size:255" json:"tech_stack"`
	GithubURL   string    `gorm:"size:512" json:"github_url"`
	DemoURL     *string   `gorm:"size:512" json:"demo_url"`
	ImageURL    *string   `gorm:"size:512" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Project) TableName() string {
	return "projects"
}

type Skill struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:128;uniqueIndex" json:"name"`
	Category string `gorm:"size:64" json:"category"`
}

func (Skill) TableName() string {
	return "skills"
}

// Schema lists every table the service owns, in migration order.
func Schema() []interface{} {
	return []interface{}{
		&ChatTurn{},
		&ContactInquiry{},
		&Project{},
		&Skill{},
	}
}
