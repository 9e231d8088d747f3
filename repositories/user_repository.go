package repositories

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Signup hashes the password and inserts a new user. An empty password is
// rejected before the database is touched; duplicate username/email
// violations surface from the insert as gorm.ErrDuplicatedKey.
func (r *UserRepository) Signup(username, email, password, imageURL string) (*models.User, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Password:       string(hashed),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate looks up a user by username and verifies the password against
// the stored hash. Unknown usernames and mismatches both report false; this
// method never surfaces an error to the caller.
func (r *UserRepository) Authenticate(username, password string) (*models.User, bool) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, false
	}

	return &user, true
}

func (r *UserRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) All() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id").Find(&users).Error
	return users, err
}

// Search returns users whose username contains the given substring.
func (r *UserRepository) Search(q string) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username LIKE ?", "%"+q+"%").Order("id").Find(&users).Error
	return users, err
}

// Delete removes a user and everything that references them: their likes,
// likes on their messages, follow rows in both directions, and their
// messages. Runs as a single transaction so a failure leaves no partial
// state behind.
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id IN (?)",
			tx.Model(&models.Message{}).Select("id").Where("user_id = ?", id),
		).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_being_followed_id = ? OR user_following_id = ?", id, id).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

// Follow inserts a follow edge. A duplicate pair violates the composite
// primary key and surfaces as gorm.ErrDuplicatedKey.
func (r *UserRepository) Follow(followerID, followedID uint) error {
	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	return r.db.Create(&follow).Error
}

func (r *UserRepository) Unfollow(followerID, followedID uint) error {
	return r.db.Where("user_following_id = ? AND user_being_followed_id = ?", followerID, followedID).
		Delete(&models.Follow{}).Error
}

// ToggleFollow follows when no edge exists and unfollows when one does.
// Reports whether the follower is following afterwards.
func (r *UserRepository) ToggleFollow(followerID, followedID uint) (bool, error) {
	following, err := r.IsFollowing(followerID, followedID)
	if err != nil {
		return false, err
	}
	if following {
		return false, r.Unfollow(followerID, followedID)
	}
	return true, r.Follow(followerID, followedID)
}

func (r *UserRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_following_id = ? AND user_being_followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

// Followers returns the users following the given user, in insertion order.
func (r *UserRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.user_following_id = users.id").
		Where("follows.user_being_followed_id = ?", userID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

// Following returns the users the given user follows, in insertion order.
func (r *UserRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.user_being_followed_id = users.id").
		Where("follows.user_following_id = ?", userID).
		Order("users.id").
		Find(&users).Error
	return users, err
}

// LikedMessages returns the messages the given user has liked.
func (r *UserRepository) LikedMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Joins("INNER JOIN likes ON likes.message_id = messages.id").
		Where("likes.user_id = ?", userID).
		Preload("User").
		Order("messages.id").
		Find(&messages).Error
	return messages, err
}

func (r *UserRepository) CountMessages(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountFollowers(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("user_being_followed_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("user_following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountLikes(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
