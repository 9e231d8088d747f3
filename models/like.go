package models

// Like marks a user's endorsement of a message. The combination of UserID
// and MessageID must be unique.
type Like struct {
	ID        uint `gorm:"primaryKey;column:id"`
	UserID    uint `gorm:"column:user_id;not null;uniqueIndex:idx_like_user_message"`
	MessageID uint `gorm:"column:message_id;not null;uniqueIndex:idx_like_user_message"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}
