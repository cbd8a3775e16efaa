package model

import "time"

type Role string

const (
	RoleUser Role = "user"
	RoleAI   Role = "ai"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAI
}

// ChatTurn is one persisted side of a chat exchange. Content has no length cap.
type ChatTurn struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      Role      `gorm:"size:16;not null;index" json:"role"`
	Content   string    `gorm:"type:longtext;not null" json:"content"`
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}

func (ChatTurn) TableName() string {
	return "chat_messages"
}
