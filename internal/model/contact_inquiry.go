package model

import "time"

const DefaultContactName = "Visitor"

type ContactInquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"type:longtext" json:"name"`
	Email     string    `gorm:"size:255;not null;index" json:"email"`
	Subject   string    `gorm:"type:longtext;not null" json:"subject"`
	Message   string    `gorm:"type:longtext;not null" json:"message"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (ContactInquiry) TableName() string {
	return "contact_messages"
}

// DisplayName falls back to DefaultContactName for anonymous inquiries.
func (c ContactInquiry) DisplayName() string {
	if c.Name == nil || *c.Name == "" {
		return DefaultContactName
	}
	return *c.Name
}
