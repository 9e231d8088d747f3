package models

// Default profile images used when a signup does not supply its own.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents an account in the system. Password always holds a bcrypt
// hash, never the plaintext.
type User struct {
	ID             uint   `gorm:"primaryKey;column:id"`
	Username       string `gorm:"uniqueIndex;size:255;not null"`
	Email          string `gorm:"uniqueIndex;size:255;not null"`
	Password       string `gorm:"not null"`
	ImageURL       string `gorm:"column:image_url"`
	HeaderImageURL string `gorm:"column:header_image_url"`
	Bio            string
	Location       string
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
