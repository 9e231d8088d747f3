package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dwoodsteinhoff/warbler-Twitter-clone/models"
)

func TestCreateMessage(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user := signupTestUser(t, users, "test1", "test1@gmail.com")

	message := &models.Message{Text: "test message", UserID: user.ID}
	require.NoError(t, messages.Create(message))

	assert.NotZero(t, message.ID)
	assert.False(t, message.Timestamp.IsZero(), "Create() did not stamp the message")

	owned, err := messages.ByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "test message", owned[0].Text)
	assert.Equal(t, "test1", owned[0].User.Username)
}

func TestCreateMessageTextRequired(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user := signupTestUser(t, users, "test1", "test1@gmail.com")

	err := messages.Create(&models.Message{Text: "", UserID: user.ID})
	assert.ErrorIs(t, err, ErrTextRequired)

	count, err := users.CountMessages(user.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestCreateMessageTextBounds(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user := signupTestUser(t, users, "test1", "test1@gmail.com")

	err := messages.Create(&models.Message{Text: strings.Repeat("a", models.MaxMessageLength+1), UserID: user.ID})
	assert.ErrorIs(t, err, ErrTextTooLong)

	err = messages.Create(&models.Message{Text: strings.Repeat("a", models.MaxMessageLength), UserID: user.ID})
	assert.NoError(t, err)
}

func TestMessageByIDNotFound(t *testing.T) {
	messages := NewMessageRepository(newTestDB(t))

	_, err := messages.ByID(99999999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestToggleLike(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user1 := signupTestUser(t, users, "test1", "test1@gmail.com")
	user2 := signupTestUser(t, users, "test2", "test2@gmail.com")

	message := &models.Message{Text: "test message 1", UserID: user1.ID}
	require.NoError(t, messages.Create(message))

	liked, err := messages.ToggleLike(user2.ID, message.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := messages.LikeCount(message.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	likers, err := messages.Likers(message.ID)
	require.NoError(t, err)
	require.Len(t, likers, 1)
	assert.Equal(t, user2.ID, likers[0].ID)

	// A second toggle by the same user removes the like again.
	liked, err = messages.ToggleLike(user2.ID, message.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = messages.LikeCount(message.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteMessageRemovesLikes(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user1 := signupTestUser(t, users, "test1", "test1@gmail.com")
	user2 := signupTestUser(t, users, "test2", "test2@gmail.com")

	message := &models.Message{Text: "doomed", UserID: user1.ID}
	require.NoError(t, messages.Create(message))

	_, err := messages.ToggleLike(user2.ID, message.ID)
	require.NoError(t, err)

	require.NoError(t, messages.Delete(message.ID))

	_, err = messages.ByID(message.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := users.CountLikes(user2.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "likes referencing the deleted message should be gone")
}

func TestTimeline(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user1 := signupTestUser(t, users, "test1", "test1@gmail.com")
	user2 := signupTestUser(t, users, "test2", "test2@gmail.com")
	user3 := signupTestUser(t, users, "test3", "test3@gmail.com")

	require.NoError(t, users.Follow(user1.ID, user2.ID))

	now := time.Now().UTC()
	require.NoError(t, messages.Create(&models.Message{Text: "mine", UserID: user1.ID, Timestamp: now.Add(-2 * time.Hour)}))
	require.NoError(t, messages.Create(&models.Message{Text: "followed", UserID: user2.ID, Timestamp: now.Add(-1 * time.Hour)}))
	require.NoError(t, messages.Create(&models.Message{Text: "stranger", UserID: user3.ID, Timestamp: now}))

	timeline, err := messages.Timeline(user1.ID, 100)
	require.NoError(t, err)
	require.Len(t, timeline, 2)

	// Newest first; the unfollowed user's message is absent.
	assert.Equal(t, "followed", timeline[0].Text)
	assert.Equal(t, "mine", timeline[1].Text)
}

func TestTimelineLimit(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	messages := NewMessageRepository(db)

	user := signupTestUser(t, users, "test1", "test1@gmail.com")

	now := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, messages.Create(&models.Message{
			Text:      "warble",
			UserID:    user.ID,
			Timestamp: now.Add(time.Duration(i) * time.Minute),
		}))
	}

	timeline, err := messages.Timeline(user.ID, 3)
	require.NoError(t, err)
	assert.Len(t, timeline, 3)
}
