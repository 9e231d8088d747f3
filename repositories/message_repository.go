package repositories

import (
	"errors"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create validates the text and inserts the message. The timestamp is
// stamped at creation time unless the caller set one. A missing owner
// violates the foreign key and surfaces as gorm.ErrForeignKeyViolated.
func (r *MessageRepository) Create(message *models.Message) error {
	if message.Text == "" {
		return ErrTextRequired
	}
	if utf8.RuneCountInString(message.Text) > models.MaxMessageLength {
		return ErrTextTooLong
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	return r.db.Create(message).Error
}

func (r *MessageRepository) ByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.Preload("User").First(&message, id).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

// Delete removes a message and its like rows in one transaction.
func (r *MessageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
}

// ByUserID returns the given user's messages, newest first.
func (r *MessageRepository) ByUserID(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_id = ?", userID).
		Preload("User").
		Order("timestamp DESC").
		Find(&messages).Error
	return messages, err
}

// Timeline returns the newest messages written by the user or by anyone the
// user follows.
func (r *MessageRepository) Timeline(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	following := r.db.Model(&models.Follow{}).
		Select("user_being_followed_id").
		Where("user_following_id = ?", userID)

	err := r.db.Where("user_id = ? OR user_id IN (?)", userID, following).
		Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// ToggleLike creates a like row for (user, message) if none exists and
// removes it otherwise. Reports whether the message is liked afterwards.
func (r *MessageRepository) ToggleLike(userID, messageID uint) (bool, error) {
	liked := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Like
		err := tx.Where("user_id = ? AND message_id = ?", userID, messageID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			return tx.Create(&models.Like{UserID: userID, MessageID: messageID}).Error
		default:
			return err
		}
	})
	if err != nil {
		return false, err
	}
	return liked, nil
}

func (r *MessageRepository) LikeCount(messageID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}

// Likers returns the users who have liked the given message.
func (r *MessageRepository) Likers(messageID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN likes ON likes.user_id = users.id").
		Where("likes.message_id = ?", messageID).
		Order("users.id").
		Find(&users).Error
	return users, err
}
