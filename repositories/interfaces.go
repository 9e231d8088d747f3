package repositories

import (
	"errors"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
)

// Validation errors raised before any storage interaction. Uniqueness and
// foreign-key violations are not pre-validated; they surface from the insert
// as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
var (
	ErrPasswordRequired = errors.New("password is required")
	ErrTextRequired     = errors.New("message text is required")
	ErrTextTooLong      = errors.New("message text exceeds 140 characters")
)

type UserStore interface {
	Signup(username, email, password, imageURL string) (*models.User, error)
	Authenticate(username, password string) (*models.User, bool)
	ByID(id uint) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	All() ([]models.User, error)
	Search(q string) ([]models.User, error)
	Delete(id uint) error

	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	ToggleFollow(followerID, followedID uint) (bool, error)
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	Followers(userID uint) ([]models.User, error)
	Following(userID uint) ([]models.User, error)
	LikedMessages(userID uint) ([]models.Message, error)

	CountMessages(userID uint) (int64, error)
	CountFollowers(userID uint) (int64, error)
	CountFollowing(userID uint) (int64, error)
	CountLikes(userID uint) (int64, error)
}

type MessageStore interface {
	Create(message *models.Message) error
	ByID(id uint) (*models.Message, error)
	Delete(id uint) error
	ByUserID(userID uint) ([]models.Message, error)
	Timeline(userID uint, limit int) ([]models.Message, error)
	ToggleLike(userID, messageID uint) (bool, error)
	LikeCount(messageID uint) (int64, error)
	Likers(messageID uint) ([]models.User, error)
}
