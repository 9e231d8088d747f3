package models

// Follow is a directional edge: the follower sees the followed user's
// messages in their timeline. The composite key allows at most one row per
// ordered pair.
type Follow struct {
	FollowedID uint `gorm:"primaryKey;column:user_being_followed_id"`
	FollowerID uint `gorm:"primaryKey;column:user_following_id"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
