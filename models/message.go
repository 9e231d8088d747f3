package models

import "time"

// MaxMessageLength is the upper bound on warble text.
const MaxMessageLength = 140

// Message is a single warble, owned by exactly one user.
type Message struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Text      string    `gorm:"size:140;not null"`
	Timestamp time.Time `gorm:"not null"`
	UserID    uint      `gorm:"column:user_id;not null"`
	User      User      `gorm:"foreignKey:UserID"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
